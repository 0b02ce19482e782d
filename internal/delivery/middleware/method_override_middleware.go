package middleware

import "net/http"

// MethodOverride lets HTML forms send PUT and DELETE through a _method field.
// It must wrap the router so the rewritten method is used for matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Failed to parse form", http.StatusBadRequest)
				return
			}
			switch method := r.PostForm.Get("_method"); method {
			case http.MethodPut, http.MethodDelete:
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

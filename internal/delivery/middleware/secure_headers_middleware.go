package middleware

import "net/http"

// SecureHeaders sets browser hardening headers. Map tiles, fonts and styles load from
// the Google and jsDelivr CDNs.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; "+
			"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net https://fonts.googleapis.com; "+
			"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net https://maps.googleapis.com; "+
			"img-src * data:; font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net; "+
			"connect-src 'self' https://maps.googleapis.com; object-src 'none'")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

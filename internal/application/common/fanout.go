package common

// FanoutReport summarizes one follower fan-out.
type FanoutReport struct {
	Followers int             `json:"followers"`
	Delivered int             `json:"delivered"`
	Failures  []FanoutFailure `json:"failures,omitempty"`
}

type FanoutFailure struct {
	FollowerId string `json:"follower_id"`
	Reason     string `json:"reason"`
}

func (r *FanoutReport) Complete() bool {
	return len(r.Failures) == 0
}

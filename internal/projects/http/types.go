package http

import (
	"encoding/json"
	"strings"
)

// TagList accepts either a JSON array of strings or a single
// comma-separated string ("a, b" -> ["a", "b"], empty entries dropped).
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*t = out
	return nil
}

type createReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Tags        TagList `json:"tags"`
}

type updateReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	Progress    *int     `json:"progress"`
	Tags        *TagList `json:"tags"`
}

package requests

import (
	"net/http"

	"github.com/zeptools/auth-core/tokens"
)

// View decomposes an incoming request into a tokens.RequestView.
// Only the first value is kept for repeated headers and parameters.
// Header keys are in the canonical net/http form, so the default
// extraction Options match without extra configuration.
func View(r *http.Request) tokens.RequestView {
	view := tokens.RequestView{
		Headers: firstValues(r.Header),
		Query:   firstValues(r.URL.Query()),
	}
	if HasBody(r) {
		if r.PostForm == nil {
			_ = r.ParseForm() // a malformed body reads as an empty one
		}
		view.Body = firstValues(r.PostForm)
	}
	return view
}

// HasBody reports whether the request method may carry body parameters.
// GET, HEAD and OPTIONS requests never contribute a body to a view.
func HasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func firstValues(values map[string][]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	flat := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			flat[key] = vals[0]
		}
	}
	return flat
}

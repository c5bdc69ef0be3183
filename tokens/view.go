package tokens

// RequestView is a decomposed, read-only view of an incoming request.
// Any subset of the maps can be nil, meaning that part of the request is absent.
// Header keys follow whatever case rules the caller supplied - lookups are exact.
type RequestView struct {
	Query   map[string]string
	Headers map[string]string
	Body    map[string]string
}

// Header reads a single header value. "" when absent.
func (v RequestView) Header(key string) string {
	return v.Headers[key]
}

// BodyParameter reads a single body field. "" when absent.
func (v RequestView) BodyParameter(key string) string {
	return v.Body[key]
}

// QueryParameter reads a single query-string parameter. "" when absent.
func (v RequestView) QueryParameter(key string) string {
	return v.Query[key]
}

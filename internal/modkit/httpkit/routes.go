package httpkit

import "net/http"

// MountRoot applies a middleware stack at the router root then invokes mount
// to register routes. The public paths of this API are unversioned
// (/stocks/{symbol}/..., /trending/...), so there is no /api/vN scope.
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if len(mw) > 0 {
		r.Use(mw...)
	}
	mount(r)
}

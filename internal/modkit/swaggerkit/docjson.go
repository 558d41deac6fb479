package swaggerkit

import "net/http"

// docReader is a seam so tests can inject alternate specs
// a generated spec can replace this skeleton once docs generation is wired
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"SentimentTech API","version":"1.0.0"},"paths":{}}`
}

// serveDocJSON serves the OpenAPI JSON so the UI can load
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}

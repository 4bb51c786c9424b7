package param

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/spf13/cast"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
}

// Binding bind query values, and the json body on non-GET requests, onto v
func Binding(r *http.Request, v interface{}) error {
	if err := decoder.Decode(v, r.URL.Query()); err != nil {
		return err
	}

	if r.Method != http.MethodGet && r.Body != nil && r.ContentLength > 0 {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return err
		}
	}

	return nil
}

// String route or query parameter as string
func String(r *http.Request, key string) string {
	if v := chi.URLParam(r, key); v != "" {
		return v
	}

	return cast.ToString(r.URL.Query().Get(key))
}

// Int route or query parameter as int
func Int(r *http.Request, key string) int {
	return cast.ToInt(String(r, key))
}

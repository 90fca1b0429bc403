package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/utils/errutil"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// subjectFrom returns the authenticated user ID, or "anonymous" when auth
// is disabled.
func subjectFrom(ctx context.Context) string {
	if sub, ok := ctx.Value(subjectKey).(string); ok && sub != "" {
		return sub
	}
	return "anonymous"
}

func authMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				errutil.HandleHTTP(r.Context(), w,
					goerr.New("missing bearer token"), http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse([]byte(raw),
				jwt.WithKey(jwa.HS256, secret),
				jwt.WithValidate(true),
			)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w,
					goerr.Wrap(err, "invalid token"), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, token.Subject())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

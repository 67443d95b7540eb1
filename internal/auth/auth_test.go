package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/victornm/quizduel/internal/auth"
	"github.com/victornm/quizduel/internal/errors"
)

func TestVerifier_Verify(t *testing.T) {
	v := auth.NewVerifier("secret")
	alice := auth.Identity{UserID: "u1", UserName: "Alice"}

	tests := map[string]struct {
		arrange func(t *testing.T) string
		assert  func(t *testing.T, id auth.Identity, err error)
	}{
		"valid token": {
			arrange: func(t *testing.T) string {
				s, err := v.Sign(alice, time.Minute)
				require.NoError(t, err)
				return s
			},
			assert: func(t *testing.T, id auth.Identity, err error) {
				require.NoError(t, err)
				assert.Equal(t, alice, id)
			},
		},

		"expired token": {
			arrange: func(t *testing.T) string {
				s, err := v.Sign(alice, -time.Minute)
				require.NoError(t, err)
				return s
			},
			assert: func(t *testing.T, _ auth.Identity, err error) {
				assert.ErrorIs(t, err, auth.ErrExpiredToken)
			},
		},

		"wrong secret": {
			arrange: func(t *testing.T) string {
				s, err := auth.NewVerifier("other").Sign(alice, time.Minute)
				require.NoError(t, err)
				return s
			},
			assert: func(t *testing.T, _ auth.Identity, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
			},
		},

		"missing subject": {
			arrange: func(t *testing.T) string {
				s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{Name: "x"}).SignedString([]byte("secret"))
				require.NoError(t, err)
				return s
			},
			assert: func(t *testing.T, _ auth.Identity, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
			},
		},

		"garbage": {
			arrange: func(*testing.T) string { return "not-a-token" },
			assert: func(t *testing.T, _ auth.Identity, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := v.Verify(tt.arrange(t))
			tt.assert(t, id, err)
		})
	}
}

func TestVerifier_Gin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := auth.NewVerifier("secret")
	token, err := v.Sign(auth.Identity{UserID: "u1", UserName: "Alice"}, time.Minute)
	require.NoError(t, err)

	r := gin.New()
	r.Use(v.Gin())
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, auth.FromContext(c.Request.Context()).UserID)
	})

	tests := map[string]struct {
		target, header string
		wantCode       int
		wantBody       string
	}{
		"header":    {target: "/me", header: "Bearer " + token, wantCode: http.StatusOK, wantBody: "u1"},
		"query":     {target: "/me?token=" + token, wantCode: http.StatusOK, wantBody: "u1"},
		"anonymous": {target: "/me", wantCode: http.StatusOK, wantBody: ""},
		"invalid":   {target: "/me", header: "Bearer nope", wantCode: http.StatusUnauthorized},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestVerifier_UnaryServerInterceptor(t *testing.T) {
	v := auth.NewVerifier("secret")
	token, err := v.Sign(auth.Identity{UserID: "u1", UserName: "Alice"}, time.Minute)
	require.NoError(t, err)

	intercept := v.UnaryServerInterceptor()
	handler := func(ctx context.Context, _ any) (any, error) {
		return auth.FromContext(ctx), nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	got, err := intercept(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: "u1", UserName: "Alice"}, got)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer nope"))
	_, err = intercept(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	assert.True(t, errors.Is(err, errors.CodeUnauthenticated))
}

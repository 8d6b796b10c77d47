package routekit_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/routekit/routekit"
)

func benchEngine(b *testing.B) *routekit.Engine {
	b.Helper()

	builder := routekit.New()
	for i := 0; i < 50; i++ {
		if _, err := builder.Get(fmt.Sprintf("/static/route%d", i), echoHandler("ok")); err != nil {
			b.Fatal(err)
		}
	}
	if _, err := builder.Get("/users/:id/posts/:postId", paramHandler("id", "postId")); err != nil {
		b.Fatal(err)
	}
	if _, err := builder.Get("/files/*", echoHandler("file")); err != nil {
		b.Fatal(err)
	}
	return builder.Freeze()
}

func BenchmarkDispatchStatic(b *testing.B) {
	engine := benchEngine(b)
	req := newRequest(http.MethodGet, "/static/route25")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Dispatch(context.Background(), req)
	}
}

func BenchmarkDispatchParams(b *testing.B) {
	engine := benchEngine(b)
	req := newRequest(http.MethodGet, "/users/123/posts/456")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Dispatch(context.Background(), req)
	}
}

func BenchmarkDispatchWildcard(b *testing.B) {
	engine := benchEngine(b)
	req := newRequest(http.MethodGet, "/files/a/b/c/d.txt")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Dispatch(context.Background(), req)
	}
}

func BenchmarkDispatchWithMiddleware(b *testing.B) {
	builder := routekit.New()
	for i := 0; i < 5; i++ {
		builder.Use(func(next routekit.Handler) routekit.Handler {
			return routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
				return next.Serve(ctx, req)
			})
		})
	}
	if _, err := builder.Get("/ping", echoHandler("pong")); err != nil {
		b.Fatal(err)
	}
	engine := builder.Freeze()
	req := newRequest(http.MethodGet, "/ping")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Dispatch(context.Background(), req)
	}
}

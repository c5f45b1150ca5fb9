package server

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies the preview server's tracer. The global tracer
// provider is used; configure it in main() before starting the server.
const tracerName = "lumen/server"

// traceMiddleware creates a span per HTTP request.
func (s *Server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := otel.Tracer(tracerName).Start(r.Context(), "http "+r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// startRenderSpan opens a span covering one render pass.
func startRenderSpan(ctx context.Context) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "lumen.render")
}

// recordSpanError marks the span failed.
func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// annotateRenderSpan records render output stats on the span.
func annotateRenderSpan(span trace.Span, bytes, warnings int) {
	span.SetAttributes(
		attribute.Int("lumen.render.bytes", bytes),
		attribute.Int("lumen.render.warnings", warnings),
	)
}

// Package health serves liveness and readiness probes.
//
// Readiness runs named checks concurrently under one timeout:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "redis": cache.RedisHealthcheck(client),
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text unless the client asks for JSON with
// ?format=json or an Accept header.
package health

// Package prometheus renders engine counters in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [goAuthLocal.Engine] and exposes an
// [net/http.Handler] that renders every counter. Counter names are prefixed
// goauthlocal_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the
//     Handler.
//   - Mutate engine state.
package prometheus

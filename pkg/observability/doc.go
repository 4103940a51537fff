/*
Package observability provides tools for monitoring the Sprout engine.

Metrics turns lifecycle hooks into Prometheus collectors registered on a private registry,
so a run can report how many generations it performed, how long its grammar state grew and
how much geometry it produced. WriteText renders the registry in the Prometheus text format.
*/
package observability

package application

import "expvar"

// counters are published under /api/debug/vars as "medlink".
var counters = expvar.NewMap("medlink")

const (
	metricSignups           = "signups"
	metricSignupConflicts   = "signup_conflicts"
	metricSignins           = "signins"
	metricSigninFailures    = "signin_failures"
	metricProfileEdits      = "profile_edits"
	metricPasswordChanges   = "password_changes"
	metricDashboardCacheHit = "dashboard_cache_hits"
	metricSideEffectErrors  = "side_effect_errors"
)

func incr(name string) {
	counters.Add(name, 1)
}

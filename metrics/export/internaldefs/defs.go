package internaldefs

import (
	goAuthLocal "github.com/MrEthical07/goAuthLocal"
)

// CounterDef binds one engine counter to its exported name and help text.
//
// CounterDef instances are intended to be configured during initialization
// and then treated as immutable.
type CounterDef struct {
	ID   goAuthLocal.MetricID
	Name string
	Help string
}

// CounterDefs lists every engine counter in export order.
var CounterDefs = []CounterDef{
	{ID: goAuthLocal.MetricLoginSuccess, Name: "goauthlocal_login_success_total", Help: "Successful login attempts."},
	{ID: goAuthLocal.MetricLoginFailure, Name: "goauthlocal_login_failure_total", Help: "Failed login attempts."},
	{ID: goAuthLocal.MetricLoginRateLimited, Name: "goauthlocal_login_rate_limited_total", Help: "Rate-limited login attempts."},
	{ID: goAuthLocal.MetricSignupSuccess, Name: "goauthlocal_signup_success_total", Help: "Successful account creations."},
	{ID: goAuthLocal.MetricSignupDuplicate, Name: "goauthlocal_signup_duplicate_total", Help: "Signup attempts rejected as duplicate."},
	{ID: goAuthLocal.MetricSignupFailure, Name: "goauthlocal_signup_failure_total", Help: "Failed signup attempts."},
	{ID: goAuthLocal.MetricLogout, Name: "goauthlocal_logout_total", Help: "Logout operations."},
	{ID: goAuthLocal.MetricSessionRestored, Name: "goauthlocal_session_restored_total", Help: "Sessions restored at startup."},
	{ID: goAuthLocal.MetricSessionRestoreFault, Name: "goauthlocal_session_restore_fault_total", Help: "Startup session loads degraded by storage faults."},
	{ID: goAuthLocal.MetricStorageFault, Name: "goauthlocal_storage_fault_total", Help: "Operations that hit a storage fault."},
}

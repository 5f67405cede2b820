package activation

// Route identifies a screen of the activation flow.
type Route string

const (
	RouteLoading            Route = "activation-loading"
	RouteCompleted          Route = "activation-completed"
	RouteTimeout            Route = "activation-timeout"
	RouteEligibilityExpired Route = "activation-eligibility-expired"
	RouteExists             Route = "activation-exists"
)

// Routes lists every screen the coordinator can navigate to.
var Routes = []Route{
	RouteLoading,
	RouteCompleted,
	RouteTimeout,
	RouteEligibilityExpired,
	RouteExists,
}

// RouteFor maps a status to its screen. Statuses without a screen stay on loading.
func RouteFor(status Status) Route {
	switch status {
	case StatusSuccess:
		return RouteCompleted
	case StatusTimeout:
		return RouteTimeout
	case StatusEligibilityExpired:
		return RouteEligibilityExpired
	case StatusExists:
		return RouteExists
	default:
		return RouteLoading
	}
}

// NextRoute computes the screen to show once the activation task returned.
func NextRoute(r Result) Route {
	if !r.IsSuccess() {
		return RouteLoading
	}
	return RouteFor(r.Status)
}

func IsLoading(route Route) bool {
	return route == RouteLoading
}

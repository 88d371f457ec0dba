/*
Package guard implements the route guard layer: pure decision tables that map
the current session state to a navigation outcome.

Guards never perform side effects or network calls. Each variant is a function
of (isLoading, hasToken, needsOnboarding) only, so a navigation layer can
re-evaluate them on every route change at no cost.
*/
package guard

import "huecas/internal/app/session"

// Well-known route paths used by guard redirects.
const (
	PathRoot       = "/"
	PathAuth       = "/auth"
	PathOnboarding = "/onboarding"
)

// Outcome is the kind of decision a guard produced.
type Outcome int

const (
	// OutcomePending means hydration is still running; render a neutral
	// loading state so the wrong route never flashes.
	OutcomePending Outcome = iota

	// OutcomeRender means the guarded children may render.
	OutcomeRender

	// OutcomeRedirect means navigation must move to Decision.Path.
	OutcomeRedirect
)

// String returns the outcome name, for logs and test failure messages.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeRender:
		return "render"
	case OutcomeRedirect:
		return "redirect"
	default:
		return "invalid"
	}
}

// Decision is a guard's navigation verdict. Path is set only for redirects.
type Decision struct {
	Outcome Outcome
	Path    string
}

// render is the shared "let the children through" decision.
var render = Decision{Outcome: OutcomeRender}

// pending is the shared "hydration in progress" decision.
var pending = Decision{Outcome: OutcomePending}

// redirect builds a redirect decision to the given path.
func redirect(path string) Decision {
	return Decision{Outcome: OutcomeRedirect, Path: path}
}

// Protected gates routes that require a fully onboarded session:
// no token redirects to /auth, an incomplete profile redirects to /onboarding.
func Protected(s session.Snapshot) Decision {
	if s.IsLoading {
		return pending
	}

	if s.Token == "" {
		return redirect(PathAuth)
	}

	if s.NeedsOnboarding {
		return redirect(PathOnboarding)
	}

	return render
}

// OnboardingOnly gates the onboarding flow itself: it requires a token, and
// bounces completed profiles back to the root so onboarding cannot be re-entered.
func OnboardingOnly(s session.Snapshot) Decision {
	if s.IsLoading {
		return pending
	}

	if s.Token == "" {
		return redirect(PathAuth)
	}

	if !s.NeedsOnboarding {
		return redirect(PathRoot)
	}

	return render
}

// PublicOnly gates the sign-in and password-reset pages: an authenticated
// session is sent to /onboarding or / depending on onboarding need.
func PublicOnly(s session.Snapshot) Decision {
	if s.IsLoading {
		return pending
	}

	if s.Token != "" {
		if s.NeedsOnboarding {
			return redirect(PathOnboarding)
		}
		return redirect(PathRoot)
	}

	return render
}

// Fallback is the decision for any unmatched route: redirect to the root.
func Fallback() Decision {
	return redirect(PathRoot)
}

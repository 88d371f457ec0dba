/*
Package user contains core data structures related to user identity.

It defines the basic representation of an account within the huecas client (the User struct),
used for passing user information between the session store, the REST client, and the chat layer.
*/
package user

// Preferences holds the onboarding choices a user made: preferred food types
// and an optional home location.
type Preferences struct {
	// FoodTypes is the set of cuisines the user marked as favorites.
	FoodTypes []string `json:"foodTypes"`

	// Location is the user's preferred sector, empty when not set.
	Location string `json:"location,omitempty"`
}

// User represents the identity information of an account holder.
// Fields use JSON tags matching the REST API and durable storage encoding.
type User struct {

	// ID is the unique identifier for the user, assigned by the server.
	ID string `json:"id"`

	// Name is the display name shown in reviews and chat.
	Name string `json:"name"`

	// Email is the sign-in address of the account.
	Email string `json:"email"`

	// Preferences carries onboarding choices. Nil until onboarding completes.
	Preferences *Preferences `json:"preferences,omitempty"`

	// IsProfileComplete reports whether the user finished onboarding.
	// A missing/false value routes the user to the onboarding flow.
	IsProfileComplete bool `json:"isProfileComplete,omitempty"`
}

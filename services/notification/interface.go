// File: services/notification/interface.go
package notification

import (
	"context"

	"practiva/services/reminder"
)

// Sink is the narrow contract with the outbound communication
// collaborator (email, SMS, external calendar feed). The engine treats
// delivery as opaque and one-way.
type Sink interface {
	DeliverReminder(ctx context.Context, p reminder.Payload) error
}

package attentive

import (
	"context"
	"sync"

	"github.com/smsflow/attentive-adapter/utils"
)

// Resource is one category of remote entity (subscriber, message, segment,
// ...) exposed through a fixed menu of named operations.
type Resource interface {
	Name() string
	Operations() []string
	Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error)
}

// Registry maps resource names to their modules.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
}

func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]Resource),
	}
}

func (r *Registry) Add(resource Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[resource.Name()] = resource
}

func (r *Registry) Get(name string) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resource, exists := r.resources[name]
	return resource, exists
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry wires every resource module the adapter ships against the
// given provider.
func DefaultRegistry(p *Provider) *Registry {
	r := NewRegistry()
	r.Add(NewSubscriberResource(p))
	r.Add(NewMessageResource(p))
	r.Add(NewCustomEventResource(p))
	r.Add(NewCustomAttributeResource(p))
	r.Add(NewEcommerceResource(p))
	r.Add(NewSegmentResource(p))
	r.Add(NewJourneyResource(p))
	r.Add(NewSignUpUnitResource(p))
	r.Add(NewKeywordResource(p))
	r.Add(NewWebhookResource(p))
	return r
}

// identifier builds the single identifying field for a subscriber-scoped
// request. Exactly one of phone or email is sent: phone is normalized and
// validated, email is passed through unchecked.
func identifier(params utils.Params) (map[string]any, error) {
	if params.GetString("identifyBy") == "email" {
		email := params.GetString("email")
		if email == "" {
			return nil, &utils.ValidationError{
				Field:  "email",
				Value:  "",
				Reason: "an email address is required when identifying by email",
			}
		}
		return map[string]any{"email": email}, nil
	}

	phone, err := utils.RequirePhone(params.GetString("phone"))
	if err != nil {
		return nil, err
	}
	return map[string]any{"phone": phone}, nil
}

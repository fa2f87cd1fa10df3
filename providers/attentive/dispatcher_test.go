package attentive

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/smsflow/attentive-adapter/services/monitoring/logging"
	"github.com/smsflow/attentive-adapter/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource struct {
	calls int
}

func (f *fakeResource) Name() string         { return "fake" }
func (f *fakeResource) Operations() []string { return []string{"echo"} }

func (f *fakeResource) Execute(_ context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	f.calls++
	if operation != "echo" {
		return nil, &UnsupportedOperationError{Resource: f.Name(), Operation: operation}
	}
	if params.GetBool("fail") {
		return nil, &utils.ValidationError{Field: "phone", Value: params.GetString("phone"), Reason: "bad"}
	}
	return []map[string]any{{"echo": params.GetString("msg")}}, nil
}

func newTestDispatcher(fake *fakeResource) *Dispatcher {
	registry := NewRegistry()
	registry.Add(fake)
	return NewDispatcher(registry, logging.NewLogger("error"))
}

func TestDispatcherCollectsResultsInOrder(t *testing.T) {
	d := newTestDispatcher(&fakeResource{})

	results, err := d.Run(context.Background(), Batch{
		Resource:  "fake",
		Operation: "echo",
		Items: []utils.Params{
			{"msg": "one"},
			{"msg": "two"},
		},
	})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].ItemIndex)
	assert.Equal(t, "one", results[0].Data["echo"])
	assert.Equal(t, 1, results[1].ItemIndex)
	assert.Equal(t, "two", results[1].Data["echo"])
}

func TestDispatcherContinueOnFail(t *testing.T) {
	fake := &fakeResource{}
	d := newTestDispatcher(fake)

	results, err := d.Run(context.Background(), Batch{
		Resource:       "fake",
		Operation:      "echo",
		ContinueOnFail: true,
		Items: []utils.Params{
			{"msg": "first"},
			{"fail": true, "phone": "nope"},
			{"msg": "third"},
		},
	})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, 1, results[1].ItemIndex)
	assert.NotEmpty(t, results[1].Error)
	assert.Contains(t, results[1].Data["error"], "nope")
	assert.Empty(t, results[2].Error)
	assert.Equal(t, 3, fake.calls, "all items must still be processed")
}

func TestDispatcherAbortsOnFirstFailureByDefault(t *testing.T) {
	fake := &fakeResource{}
	d := newTestDispatcher(fake)

	_, err := d.Run(context.Background(), Batch{
		Resource:  "fake",
		Operation: "echo",
		Items: []utils.Params{
			{"msg": "first"},
			{"fail": true},
			{"msg": "never reached"},
		},
	})
	require.Error(t, err)

	var validationErr *utils.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, 2, fake.calls, "remaining items must be aborted")
}

func TestDispatcherUnknownResource(t *testing.T) {
	d := newTestDispatcher(&fakeResource{})

	_, err := d.Run(context.Background(), Batch{
		Resource:  "carrier-pigeon",
		Operation: "send",
		Items:     []utils.Params{{}},
	})
	require.Error(t, err)

	var unsupportedErr *UnsupportedOperationError
	require.True(t, errors.As(err, &unsupportedErr))
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestUnknownOperationSendsNoRequest(t *testing.T) {
	requests := 0
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	resource := NewSubscriberResource(provider)
	_, err := resource.Execute(context.Background(), "teleport", utils.Params{})
	require.Error(t, err)

	var unsupportedErr *UnsupportedOperationError
	require.True(t, errors.As(err, &unsupportedErr))
	assert.Contains(t, err.Error(), "teleport")
	assert.Zero(t, requests)
}

func TestDefaultRegistryKnowsAllResources(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {})
	registry := DefaultRegistry(provider)

	for _, name := range []string{
		"subscriber", "message", "customEvent", "customAttribute", "ecommerce",
		"segment", "journey", "signUpUnit", "keyword", "webhook",
	} {
		resource, exists := registry.Get(name)
		require.True(t, exists, name)
		assert.Equal(t, name, resource.Name())
		assert.NotEmpty(t, resource.Operations())
	}
}

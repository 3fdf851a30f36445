package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	err       error
	delivered []Lead
}

func (f *fakeSink) Deliver(_ context.Context, lead Lead) error {
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, lead)
	return nil
}

type memStore struct {
	leads    []Lead
	storeErr error
}

func (m *memStore) Store(_ context.Context, lead Lead) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.leads = append(m.leads, lead)
	return nil
}

func (m *memStore) Pending(_ context.Context) ([]Lead, error) {
	return append([]Lead(nil), m.leads...), nil
}

func (m *memStore) Remove(_ context.Context, lead Lead) error {
	for i, l := range m.leads {
		if l.Name == lead.Name {
			m.leads = append(m.leads[:i], m.leads[i+1:]...)
			return nil
		}
	}
	return nil
}

func sampleLead() Lead {
	return Lead{
		Kind:    "diagnosis",
		Name:    "김대표",
		Phone:   "010-0000-0000",
		Company: "테스트상사",
	}
}

func TestSubmit_Delivered(t *testing.T) {
	sink := &fakeSink{}
	svc := NewService(sink, &memStore{}, zerolog.Nop())

	result := svc.Submit(context.Background(), sampleLead())

	assert.Equal(t, StatusDelivered, result.Status)
	assert.NoError(t, result.SinkError)
	require.Len(t, sink.delivered, 1)
	assert.False(t, sink.delivered[0].SubmittedAt.IsZero(), "Submit stamps the submission time")
}

func TestSubmit_FallsBackToStore(t *testing.T) {
	sink := &fakeSink{err: errors.New("gateway down")}
	store := &memStore{}
	svc := NewService(sink, store, zerolog.Nop())

	result := svc.Submit(context.Background(), sampleLead())

	assert.Equal(t, StatusStored, result.Status)
	assert.Error(t, result.SinkError)
	assert.Len(t, store.leads, 1)
}

func TestSubmit_LostWithoutStore(t *testing.T) {
	sink := &fakeSink{err: errors.New("gateway down")}
	svc := NewService(sink, nil, zerolog.Nop())

	result := svc.Submit(context.Background(), sampleLead())

	assert.Equal(t, StatusLost, result.Status)
	assert.Error(t, result.SinkError)
}

func TestSubmit_LostWhenStoreFails(t *testing.T) {
	sink := &fakeSink{err: errors.New("gateway down")}
	store := &memStore{storeErr: errors.New("store down")}
	svc := NewService(sink, store, zerolog.Nop())

	result := svc.Submit(context.Background(), sampleLead())

	assert.Equal(t, StatusLost, result.Status)
}

func TestReplay_DeliversAndRemovesPending(t *testing.T) {
	store := &memStore{leads: []Lead{
		{Kind: "diagnosis", Name: "a"},
		{Kind: "consultation", Name: "b"},
	}}
	sink := &fakeSink{}
	svc := NewService(sink, store, zerolog.Nop())

	delivered, err := svc.Replay(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, delivered)
	assert.Empty(t, store.leads)
	assert.Len(t, sink.delivered, 2)
}

func TestReplay_KeepsLeadsOnFailure(t *testing.T) {
	store := &memStore{leads: []Lead{{Name: "a"}}}
	sink := &fakeSink{err: errors.New("still down")}
	svc := NewService(sink, store, zerolog.Nop())

	delivered, err := svc.Replay(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, delivered)
	assert.Len(t, store.leads, 1)
}

func TestReplay_NoStore(t *testing.T) {
	svc := NewService(&fakeSink{}, nil, zerolog.Nop())

	delivered, err := svc.Replay(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
}

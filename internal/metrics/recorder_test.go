package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/storefront/internal/events"
)

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, in *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestRecorder_ProductEvent(t *testing.T) {
	cw := &fakeCloudWatch{}
	r := NewRecorder(cw, "Storefront")

	require.NoError(t, r.Record(context.Background(), events.Event{Type: events.TypeProductCreated, ProductID: 6}))
	require.Len(t, cw.inputs, 1)
	assert.Equal(t, "Storefront", *cw.inputs[0].Namespace)
	require.Len(t, cw.inputs[0].MetricData, 1)
	assert.Equal(t, MetricProductsCreated, *cw.inputs[0].MetricData[0].MetricName)
	assert.Equal(t, 1.0, *cw.inputs[0].MetricData[0].Value)
}

func TestDatums_CheckoutCreated(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	data := Datums(events.Event{
		Type:        events.TypeCheckoutCreated,
		OccurredAt:  at,
		Currency:    "inr",
		AmountMinor: 259800,
		ItemCount:   2,
	})

	require.Len(t, data, 3)
	assert.Equal(t, MetricCheckoutSessions, *data[0].MetricName)
	assert.Equal(t, "inr", *data[0].Dimensions[0].Value)
	assert.Equal(t, MetricCheckoutAmount, *data[1].MetricName)
	assert.Equal(t, 259800.0, *data[1].Value)
	assert.Equal(t, MetricCheckoutItems, *data[2].MetricName)
	assert.Equal(t, 2.0, *data[2].Value)
	assert.True(t, at.Equal(*data[0].Timestamp))
}

func TestDatums_CheckoutFailedDimension(t *testing.T) {
	data := Datums(events.Event{Type: events.TypeCheckoutFailed})
	require.Len(t, data, 1)
	assert.Equal(t, "ErrorKind", *data[0].Dimensions[0].Name)
	assert.Equal(t, "unknown", *data[0].Dimensions[0].Value)
}

func TestRecorder_IgnoresUnknownType(t *testing.T) {
	cw := &fakeCloudWatch{}
	r := NewRecorder(cw, "Storefront")

	require.NoError(t, r.Record(context.Background(), events.Event{Type: "something.else"}))
	assert.Empty(t, cw.inputs)
}

func TestRecorder_WrapsError(t *testing.T) {
	cause := errors.New("denied")
	r := NewRecorder(&fakeCloudWatch{err: cause}, "Storefront")

	err := r.Record(context.Background(), events.Event{Type: events.TypeProductDeleted})
	assert.ErrorIs(t, err, cause)
}

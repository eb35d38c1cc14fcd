package metrics

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/imrishuroy/storefront/internal/aws"
	"github.com/imrishuroy/storefront/internal/events"
)

// Metric names.
const (
	MetricProductsCreated  = "ProductsCreated"
	MetricProductsUpdated  = "ProductsUpdated"
	MetricProductsDeleted  = "ProductsDeleted"
	MetricCheckoutSessions = "CheckoutSessionsCreated"
	MetricCheckoutAmount   = "CheckoutAmountMinor"
	MetricCheckoutItems    = "CheckoutItems"
	MetricCheckoutFailures = "CheckoutFailures"
)

// Recorder writes storefront event metrics to CloudWatch.
type Recorder struct {
	client    aws.CloudWatchAPI
	namespace string
}

func NewRecorder(client aws.CloudWatchAPI, namespace string) *Recorder {
	return &Recorder{
		client:    client,
		namespace: namespace,
	}
}

// Record converts ev to metric data and puts it. Unknown event types are ignored.
func (r *Recorder) Record(ctx context.Context, ev events.Event) error {
	data := Datums(ev)
	if len(data) == 0 {
		return nil
	}
	_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  sdkaws.String(r.namespace),
		MetricData: data,
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

// Datums maps one event to its CloudWatch datums.
func Datums(ev events.Event) []cwtypes.MetricDatum {
	ts := ev.OccurredAt
	if ts.IsZero() {
		ts = time.Now()
	}
	count := func(name string, dims ...cwtypes.Dimension) cwtypes.MetricDatum {
		return cwtypes.MetricDatum{
			MetricName: sdkaws.String(name),
			Timestamp:  sdkaws.Time(ts),
			Unit:       cwtypes.StandardUnitCount,
			Value:      sdkaws.Float64(1),
			Dimensions: dims,
		}
	}

	switch ev.Type {
	case events.TypeProductCreated:
		return []cwtypes.MetricDatum{count(MetricProductsCreated)}
	case events.TypeProductUpdated:
		return []cwtypes.MetricDatum{count(MetricProductsUpdated)}
	case events.TypeProductDeleted:
		return []cwtypes.MetricDatum{count(MetricProductsDeleted)}
	case events.TypeCheckoutCreated:
		currency := dimension("Currency", ev.Currency)
		return []cwtypes.MetricDatum{
			count(MetricCheckoutSessions, currency),
			{
				MetricName: sdkaws.String(MetricCheckoutAmount),
				Timestamp:  sdkaws.Time(ts),
				Unit:       cwtypes.StandardUnitNone,
				Value:      sdkaws.Float64(float64(ev.AmountMinor)),
				Dimensions: []cwtypes.Dimension{currency},
			},
			{
				MetricName: sdkaws.String(MetricCheckoutItems),
				Timestamp:  sdkaws.Time(ts),
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(float64(ev.ItemCount)),
			},
		}
	case events.TypeCheckoutFailed:
		return []cwtypes.MetricDatum{count(MetricCheckoutFailures, dimension("ErrorKind", ev.ErrorKind))}
	default:
		return nil
	}
}

func dimension(name, value string) cwtypes.Dimension {
	if value == "" {
		value = "unknown"
	}
	return cwtypes.Dimension{Name: sdkaws.String(name), Value: sdkaws.String(value)}
}

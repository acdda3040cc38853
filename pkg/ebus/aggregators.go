package ebus

import "math"

type EventAggregatorFunc func(name string, value float64)

type EventAggregator struct {
	fun EventAggregatorFunc
}

func RegisterAggregator(aggs ...*EventAggregator) {
	aggregatorsLock.Lock()
	defer aggregatorsLock.Unlock()
outer:

	for _, agg := range aggs {
		for _, existing := range aggregators {
			if existing == agg {
				continue outer
			}
		}
		aggregators = append(aggregators, agg)
	}
}

// DegreeAggregator republishes a radian topic as degrees on
// "<topic>.deg", for displays that want human readable angles.
func DegreeAggregator(topic string) *EventAggregator {
	out := topic + ".deg"
	return &EventAggregator{
		fun: func(name string, value float64) {
			if name == topic {
				Publish(out, value*180/math.Pi)
			}
		},
	}
}


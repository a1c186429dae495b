package logging

import (
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Navigation field helpers

func Component(name string) Field {
	return String("component", name)
}

// Network tags entries with the owning network's instance id
func Network(instanceID string) Field {
	return String("network", instanceID)
}

func NodeID(id int) Field {
	return Int("node_id", id)
}

func LinkID(id int) Field {
	return Int("link_id", id)
}

func Hull(name string) Field {
	return String("hull", name)
}

func Zone(zone int) Field {
	return Int("zone", zone)
}

// Point encodes a position as a three element array
func Point(key string, p geom.Vec3) Field {
	return Field{Key: key, Value: [3]float64{p.X, p.Y, p.Z}}
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

package murmur

import "fmt"

// aggregate reduces a non-empty slice of points to one scalar under method.
// All n points participate regardless of whether they are empty slots;
// x_files_factor gating is not applied here.
func aggregate(method AggregationMethod, points []Point) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: cannot aggregate an empty point set", ErrCorruptFile)
	}

	switch method {
	case Average:
		var sum float64
		for _, p := range points {
			sum += p.Value
		}
		return sum / float64(len(points)), nil

	case Sum:
		var sum float64
		for _, p := range points {
			sum += p.Value
		}
		return sum, nil

	case Last:
		best := points[0]
		for _, p := range points[1:] {
			if p.Interval > best.Interval {
				best = p
			}
		}
		return best.Value, nil

	case Max:
		max := points[0].Value
		for _, p := range points[1:] {
			if p.Value > max {
				max = p.Value
			}
		}
		return max, nil

	case Min:
		min := points[0].Value
		for _, p := range points[1:] {
			if p.Value < min {
				min = p.Value
			}
		}
		return min, nil

	default:
		return 0, fmt.Errorf("%w: unknown aggregation method %d", ErrCorruptFile, method)
	}
}

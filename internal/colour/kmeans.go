package colour

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"
)

// KMeansExtractor implements colour extraction using seeded k-means
// clustering in CIE Lab space. Euclidean distance in Lab approximates
// perceived colour difference far better than raw RGB distance, which
// keeps the chosen representatives relevant.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	seed          int64
}

// Extract extracts up to count representative colours from the samples.
// Results are reproducible for identical samples and seed.
func (e *KMeansExtractor) Extract(samples []color.Color, count int) (*Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no pixels to cluster")
	}

	// If the image holds no more distinct colours than requested there is
	// nothing to cluster.
	unique := uniqueColours(samples)
	if count >= len(unique) {
		return NewPalette(unique), nil
	}

	points := make([]clusters.Coordinates, 0, len(samples))
	for _, s := range samples {
		if p, ok := ToLab(s); ok {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no opaque pixels to cluster")
	}

	centroids := e.cluster(points, count)

	colours := make([]RGB, len(centroids))
	for i, c := range centroids {
		colours[i] = LabToRGB(c)
	}
	return NewPalette(colours), nil
}

// cluster runs the assignment/update iteration over the sample points and
// returns the final centroids in cluster-index order.
func (e *KMeansExtractor) cluster(points []clusters.Coordinates, k int) []clusters.Coordinates {
	rng := rand.New(rand.NewSource(e.seed))

	obs := make(clusters.Observations, len(points))
	for i, p := range points {
		obs[i] = p
	}

	cc := seedCentroids(points, k, rng)
	prev := make([]clusters.Coordinates, len(cc))

	for iter := 0; iter < e.maxIterations; iter++ {
		cc.Reset()
		for _, o := range obs {
			ci := cc.Nearest(o)
			cc[ci].Append(o)
		}

		for i := range cc {
			prev[i] = append(prev[i][:0], cc[i].Center...)
		}

		cc.Recenter()

		// A cluster that lost every point keeps its stale centre after
		// recentring; reseed it from a random sample.
		for i := range cc {
			if len(cc[i].Observations) == 0 {
				cc[i].Center = append(clusters.Coordinates{}, points[rng.Intn(len(points))]...)
			}
		}

		movement := 0.0
		for i := range cc {
			movement += floats.Distance(prev[i], cc[i].Center, 2)
		}
		if movement < e.convergence {
			break
		}
	}

	centroids := make([]clusters.Coordinates, len(cc))
	for i := range cc {
		centroids[i] = cc[i].Center
	}
	return centroids
}

// seedCentroids picks initial centres with the k-means++ rule: the first
// at random, the rest with probability proportional to squared distance
// from the nearest existing centre.
func seedCentroids(points []clusters.Coordinates, k int, rng *rand.Rand) clusters.Clusters {
	cc := make(clusters.Clusters, 0, k)
	first := points[rng.Intn(len(points))]
	cc = append(cc, clusters.Cluster{Center: append(clusters.Coordinates{}, first...)})

	distances := make([]float64, len(points))
	for len(cc) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range cc {
				// Coordinates.Distance is already squared.
				if d := p.Distance(c.Center); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist
			total += minDist
		}

		if total == 0 {
			// Every remaining point coincides with an existing centre;
			// nudge a duplicate so the loop can finish.
			last := cc[len(cc)-1].Center
			nudged := clusters.Coordinates{last[0] + 0.1, last[1] + 0.1, last[2] + 0.1}
			cc = append(cc, clusters.Cluster{Center: nudged})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				cc = append(cc, clusters.Cluster{Center: append(clusters.Coordinates{}, points[i]...)})
				break
			}
		}
	}

	return cc
}

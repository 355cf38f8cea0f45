package bfs_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// farm returns donkey–sheep(9), sheep–cow(3), cow–horse(5), horse–donkey(8).
func farm(t testing.TB) (*core.Graph[string], map[string]*core.Vertex[string]) {
	t.Helper()
	g := core.NewGraph[string]()
	vs := make(map[string]*core.Vertex[string])
	for _, name := range []string{"donkey", "sheep", "cow", "horse"} {
		vs[name] = core.NewVertex(name)
		require.NoError(t, g.AddVertex(vs[name]))
	}
	require.NoError(t, g.AddEdge(vs["donkey"], vs["sheep"], 9))
	require.NoError(t, g.AddEdge(vs["sheep"], vs["cow"], 3))
	require.NoError(t, g.AddEdge(vs["cow"], vs["horse"], 5))
	require.NoError(t, g.AddEdge(vs["horse"], vs["donkey"], 8))

	return g, vs
}

func TestFindPath_Farm(t *testing.T) {
	g, vs := farm(t)
	s := bfs.New(g)

	path, found, err := s.FindPath(vs["donkey"], vs["horse"])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"donkey", "horse"}, path)

	// Two 2-hop routes exist; the neighbor added first wins.
	path, found, err = s.FindPath(vs["donkey"], vs["cow"])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"donkey", "sheep", "cow"}, path)
}

func TestFindPath_SameVertex(t *testing.T) {
	g, vs := farm(t)
	path, found, err := bfs.New(g).FindPath(vs["cow"], vs["cow"])
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"cow"}, path)
}

func TestFindPath_Disconnected(t *testing.T) {
	g, vs := farm(t)
	island := core.NewVertex("goat")
	require.NoError(t, g.AddVertex(island))

	path, found, err := bfs.New(g).FindPath(vs["donkey"], island)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestFindPath_Errors(t *testing.T) {
	g, vs := farm(t)
	ghost := core.NewVertex("ghost")

	cases := []struct {
		name string
		s    *bfs.Searcher[string]
		src  *core.Vertex[string]
		dst  *core.Vertex[string]
		want error
	}{
		{"nil graph", bfs.New[string](nil), vs["cow"], vs["cow"], search.ErrNilGraph},
		{"nil source", bfs.New(g), nil, vs["cow"], core.ErrNilVertex},
		{"nil destination", bfs.New(g), vs["cow"], nil, core.ErrNilVertex},
		{"unknown source", bfs.New(g), ghost, vs["cow"], core.ErrVertexNotFound},
		{"unknown destination", bfs.New(g), vs["cow"], ghost, core.ErrVertexNotFound},
		{"bad option", bfs.New(g, search.WithMaxCost(-1)), vs["cow"], vs["horse"], search.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, found, err := tc.s.FindPath(tc.src, tc.dst)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, found)
			assert.Nil(t, path)
		})
	}
}

func TestFindPath_MaxCost(t *testing.T) {
	g, vs := farm(t)

	_, found, err := bfs.New(g, search.WithMaxCost(1)).FindPath(vs["donkey"], vs["cow"])
	require.NoError(t, err)
	assert.False(t, found, "cow is two hops away")

	path, found, err := bfs.New(g, search.WithMaxCost(2)).FindPath(vs["donkey"], vs["cow"])
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, path, 3)
}

func TestFindPath_OnVisit(t *testing.T) {
	g, vs := farm(t)

	var order []string
	var depths []float64
	visit := func(id core.VertexID, cost float64) error {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		order = append(order, v.Payload())
		depths = append(depths, cost)
		return nil
	}
	_, found, err := bfs.New(g, search.WithOnVisit(visit)).FindPath(vs["donkey"], vs["cow"])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"donkey", "sheep", "horse", "cow"}, order)
	assert.Equal(t, []float64{0, 1, 1, 2}, depths)

	stop := errors.New("stop")
	_, found, err = bfs.New(g, search.WithOnVisit(func(core.VertexID, float64) error { return stop })).
		FindPath(vs["donkey"], vs["cow"])
	assert.ErrorIs(t, err, stop)
	assert.False(t, found)
}

func TestFindPath_Canceled(t *testing.T) {
	g, vs := farm(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found, err := bfs.New(g, search.WithContext(ctx)).FindPath(vs["donkey"], vs["cow"])
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
}

func TestFindPath_ForeignNeighbor(t *testing.T) {
	g, vs := farm(t)
	vs["donkey"].AddAdjacent(core.NewVertex("stray"), 1)

	_, _, err := bfs.New(g).FindPath(vs["donkey"], vs["cow"])
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRoute(t *testing.T) {
	g, vs := farm(t)
	r, found, err := bfs.New(g).Route(vs["sheep"], vs["horse"])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, r.Hops())
	// Hop count ties; donkey precedes cow in sheep's adjacency.
	assert.Equal(t, []string{"sheep", "donkey", "horse"}, r.Payloads())
	assert.Equal(t, 17.0, r.Weight())
}

// hopDistances computes all-pairs hop counts by Floyd–Warshall.
func hopDistances(g *core.Graph[string]) [][]float64 {
	vs := g.Vertices()
	n := len(vs)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range g.Edges() {
		i, _ := g.ID(e.From)
		j, _ := g.ID(e.To)
		if i != j {
			d[i][j], d[j][i] = 1, 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// TestFindPath_MatchesBruteForce checks path length and validity against
// Floyd–Warshall on seeded random graphs.
func TestFindPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		net, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
			builder.RandomSparse(14, 0.2),
		)
		require.NoError(t, err)
		g := net.Graph()
		vs := g.Vertices()
		dist := hopDistances(g)
		s := bfs.New(g)

		for i, src := range vs {
			for j, dst := range vs {
				r, found, err := s.Route(src, dst)
				require.NoError(t, err)
				if math.IsInf(dist[i][j], 1) {
					assert.False(t, found, "seed %d: %d→%d", seed, i, j)
					continue
				}
				require.True(t, found, "seed %d: %d→%d", seed, i, j)
				assert.Equal(t, int(dist[i][j]), r.Hops())
				assert.Same(t, src, r.Vertices[0])
				assert.Same(t, dst, r.Vertices[len(r.Vertices)-1])
				for k := 1; k < len(r.Vertices); k++ {
					_, ok := r.Vertices[k-1].Weight(r.Vertices[k])
					assert.True(t, ok, "route step %d is not an edge", k)
				}
			}
		}
	}
}

func TestFindPath_Concurrent(t *testing.T) {
	net, err := builder.BuildGraph(nil, builder.Grid(10, 10))
	require.NoError(t, err)
	src, _ := net.Lookup(builder.GridID(0, 0))
	dst, _ := net.Lookup(builder.GridID(9, 9))
	s := bfs.New(net.Graph())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				_, _ = net.Graph().Neighbors(src)
			}
			r, found, err := s.Route(src, dst)
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, 18, r.Hops())
		}(i)
	}
	wg.Wait()
}

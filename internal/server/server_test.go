package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/internal/server"
	"github.com/katalvlaran/gridspace/topology"
)

type ServerSuite struct {
	suite.Suite
	srv *httptest.Server
}

func (s *ServerSuite) SetupSuite() {
	g, err := grid.New(&geom.Bounds{Max: geom.Point{X: 10, Y: 10}}, 10, 10)
	s.Require().NoError(err)
	g.SetFieldValue(55, 4.5)
	top, err := topology.New(g)
	s.Require().NoError(err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.srv = httptest.NewServer(server.New(top, log).Routes())
}

func (s *ServerSuite) TearDownSuite() { s.srv.Close() }

// get fetches path and decodes the body into out, returning the status.
func (s *ServerSuite) get(path string, out any) int {
	resp, err := http.Get(s.srv.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *ServerSuite) post(path string, body any, out any) int {
	buf, err := json.Marshal(body)
	s.Require().NoError(err)
	resp, err := http.Post(s.srv.URL+path, "application/json", bytes.NewReader(buf))
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *ServerSuite) TestHealth() {
	var body map[string]string
	s.Equal(http.StatusOK, s.get("/api/health", &body))
	s.Equal("ok", body["status"])
}

func (s *ServerSuite) TestGridInfo() {
	var info server.GridInfo
	s.Require().Equal(http.StatusOK, s.get("/api/grid", &info))
	s.Equal(10, info.Cols)
	s.Equal(100, info.ActiveCells)
	s.Equal("von-neumann", info.Connectivity)
	s.Equal(server.Point{X: 10, Y: 10}, info.Max)
}

func (s *ServerSuite) TestCellAt() {
	var c server.CellInfo
	s.Require().Equal(http.StatusOK, s.get("/api/cells/at?x=5.2&y=5.7", &c))
	s.Equal(55, c.ID)
	s.Equal(5, c.Col)
	s.Equal(5, c.Row)
	s.Equal(server.Point{X: 5.5, Y: 5.5}, c.Center)
	s.Equal(4.5, c.Field)

	s.Equal(http.StatusNotFound, s.get("/api/cells/at?x=-1&y=5", nil))
	s.Equal(http.StatusBadRequest, s.get("/api/cells/at?x=abc&y=5", nil))
}

func (s *ServerSuite) TestNeighbors() {
	var n server.NeighborsResponse
	s.Require().Equal(http.StatusOK, s.get("/api/cells/0/neighbors", &n))
	s.Equal([]int{1, 10}, n.Neighbors)

	s.Require().Equal(http.StatusOK, s.get("/api/cells/55/neighbors?radius=2", &n))
	s.Len(n.Neighbors, 12)

	s.Equal(http.StatusNotFound, s.get("/api/cells/100/neighbors", nil))
	s.Equal(http.StatusBadRequest, s.get("/api/cells/x/neighbors", nil))
	s.Equal(http.StatusBadRequest, s.get("/api/cells/1/neighbors?radius=-2", nil))
}

func (s *ServerSuite) TestNearest() {
	var n server.NearestResponse
	s.Require().Equal(http.StatusOK, s.get("/api/cells/nearest?x=0.5&y=0.5&k=3", &n))
	s.Equal([]int{0, 1, 10}, n.Cells)
	s.Equal(http.StatusBadRequest, s.get("/api/cells/nearest?x=0.5&y=0.5&k=0", nil))
}

func (s *ServerSuite) TestPath() {
	var p server.PathResponse
	req := server.PathRequest{From: server.Point{X: 0.5, Y: 0.5}, To: server.Point{X: 9.5, Y: 9.5}, Algorithm: "BF"}
	s.Require().Equal(http.StatusOK, s.post("/api/path", req, &p))
	s.Len(p.Cells, 19)
	s.Len(p.Waypoints, 19)
	s.Equal(18.0, p.Weight)
	s.Equal("BF", p.Algorithm)

	req.Algorithm = "JPS"
	s.Require().Equal(http.StatusOK, s.post("/api/path", req, &p))
	s.Equal("A*", p.Algorithm)

	req.Algorithm = ""
	req.Blocked = []int{99}
	s.Equal(http.StatusNotFound, s.post("/api/path", req, nil))

	req.Blocked = nil
	req.Weights = map[int]float64{0: 1, 99: -1}
	s.Equal(http.StatusBadRequest, s.post("/api/path", req, nil))

	req.Weights = nil
	req.Algorithm = "teleport"
	s.Equal(http.StatusBadRequest, s.post("/api/path", req, nil))
}

func (s *ServerSuite) TestDistance() {
	var d server.DistanceResponse
	s.Require().Equal(http.StatusOK, s.get("/api/distance?x1=0.5&y1=0.5&x2=3.5&y2=4.5", &d))
	s.Equal(7.0, d.Distance)
	s.Equal(http.StatusNotFound, s.get("/api/distance?x1=0.5&y1=0.5&x2=30&y2=4.5", nil))
}

func (s *ServerSuite) TestPathSchema() {
	var schema map[string]any
	s.Require().Equal(http.StatusOK, s.get("/api/schema/path", &schema))
	s.Equal("Path request", schema["title"])
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestBadBody(t *testing.T) {
	g, err := grid.New(&geom.Bounds{Max: geom.Point{X: 2, Y: 2}}, 2, 2)
	require.NoError(t, err)
	top, err := topology.New(g)
	require.NoError(t, err)
	h := server.New(top, slog.New(slog.NewTextHandler(io.Discard, nil))).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/path", bytes.NewBufferString("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

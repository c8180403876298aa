// Command fake-provider serves deterministic synthetic ranking
// histories on the upstream wire format, so the service can run locally
// without the real data source.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"hash/fnv"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/irosadie/fifa-ranking/pkg/logger"
)

// Default generation constants.
const (
	defaultAddr     = ":7070"
	defaultReleases = 36 // monthly releases, three years back
	maxRank         = 120
	basePoints      = 900.0
	pointsPerRank   = 8.5
)

// countries is the fixed synthetic catalog.
var countries = []struct {
	Code string `json:"code"`
	Name string `json:"name"`
}{
	{"ARG", "Argentina"},
	{"BRA", "Brazil"},
	{"ENG", "England"},
	{"ESP", "Spain"},
	{"FRA", "France"},
	{"GER", "Germany"},
	{"IDN", "Indonesia"},
	{"ITA", "Italy"},
	{"JPN", "Japan"},
	{"USA", "United States"},
}

type wireRecord struct {
	Date   string  `json:"date"`
	Rank   int     `json:"rank"`
	Points float64 `json:"points"`
}

type wireHistory struct {
	Code    string       `json:"code"`
	Name    string       `json:"name"`
	History []wireRecord `json:"history"`
}

func main() {
	var (
		addr     = flag.String("addr", defaultAddr, "Listen address")
		releases = flag.Int("releases", defaultReleases, "Number of monthly ranking releases per country")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Named("fake-provider")
	ctx := context.Background()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/countries", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(countries)
	})

	mux.HandleFunc("/api/v1/rankings/", func(w http.ResponseWriter, r *http.Request) {
		code, ok := historyCode(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		name := countryName(code)
		if name == "" {
			http.NotFound(w, r)
			return
		}
		// gender/edition shift the seed so the series differ per query.
		seedSuffix := r.URL.Query().Get("gender") + "/" + r.URL.Query().Get("edition")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wireHistory{
			Code:    code,
			Name:    name,
			History: generateHistory(code+"/"+seedSuffix, *releases),
		})
	})

	log.Info(ctx, "fake provider listening", logger.String("addr", *addr))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Error(ctx, "server failed", logger.Error(err))
	}
}

// historyCode extracts the country code from
// /api/v1/rankings/{code}/history.
func historyCode(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/api/v1/rankings/")
	if !ok {
		return "", false
	}
	code, ok := strings.CutSuffix(rest, "/history")
	if !ok || code == "" || strings.Contains(code, "/") {
		return "", false
	}
	return strings.ToUpper(code), true
}

func countryName(code string) string {
	for _, c := range countries {
		if c.Code == code {
			return c.Name
		}
	}
	return ""
}

// generateHistory walks a seeded random rank series backwards from the
// current month. The same seed always yields the same series.
func generateHistory(seed string, releases int) []wireRecord {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	rank := 1 + rng.Intn(maxRank/2)
	now := time.Now().UTC()
	records := make([]wireRecord, 0, releases)
	for i := releases - 1; i >= 0; i-- {
		rank += rng.Intn(7) - 3
		if rank < 1 {
			rank = 1
		}
		if rank > maxRank {
			rank = maxRank
		}
		date := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		records = append(records, wireRecord{
			Date:   date.Format("2006-01-02"),
			Rank:   rank,
			Points: basePoints + float64(maxRank-rank)*pointsPerRank + rng.Float64()*5,
		})
	}
	return records
}

package store

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"forkful/internal/mealdb"
)

// fakeAPI is an httptest-backed TheMealDB stand-in shared by the store
// tests. It records per-endpoint request counts and can inject failures
// and artificial latency.
type fakeAPI struct {
	srv *httptest.Server

	mu          sync.Mutex
	counts      map[string]int
	categories  []string
	areas       []string
	ingredients []string
	byCategory  map[string][]map[string]any
	byArea      map[string][]map[string]any
	records     map[string]map[string]any
	searches    map[string][]map[string]any
	failStatus  map[string]int
	lookupDelay time.Duration
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{
		counts:     make(map[string]int),
		byCategory: make(map[string][]map[string]any),
		byArea:     make(map[string][]map[string]any),
		records:    make(map[string]map[string]any),
		searches:   make(map[string][]map[string]any),
		failStatus: make(map[string]int),
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *mealdb.Client {
	return mealdb.NewClient(f.srv.URL)
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[key]
}

func (f *fakeAPI) totalRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.counts {
		total += n
	}
	return total
}

func (f *fakeAPI) fail(key string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failStatus[key] = status
}

func (f *fakeAPI) setLookupDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookupDelay = d
}

func (f *fakeAPI) heal(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failStatus, key)
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var key string
	var meals []map[string]any
	var delay time.Duration

	f.mu.Lock()
	switch r.URL.Path {
	case "/list.php":
		switch {
		case query.Get("c") == "list":
			key = "list.c"
			for _, name := range f.categories {
				meals = append(meals, map[string]any{"strCategory": name})
			}
		case query.Get("a") == "list":
			key = "list.a"
			for _, name := range f.areas {
				meals = append(meals, map[string]any{"strArea": name})
			}
		case query.Get("i") == "list":
			key = "list.i"
			for _, name := range f.ingredients {
				meals = append(meals, map[string]any{"strIngredient": name})
			}
		}
	case "/filter.php":
		if c := query.Get("c"); c != "" {
			key = "filter.c:" + c
			meals = f.byCategory[c]
		} else if a := query.Get("a"); a != "" {
			key = "filter.a:" + a
			meals = f.byArea[a]
		}
	case "/search.php":
		key = "search:" + query.Get("s")
		meals = f.searches[query.Get("s")]
	case "/lookup.php":
		key = "lookup:" + query.Get("i")
		if record, ok := f.records[query.Get("i")]; ok {
			meals = []map[string]any{record}
		}
		delay = f.lookupDelay
	}

	f.counts[key]++
	status := f.failStatus[key]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if meals == nil {
		fmt.Fprint(w, `{"meals":null}`)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"meals": meals})
}

// summaryRecord builds a filter.php-shaped entry.
func summaryRecord(id, name string) map[string]any {
	return map[string]any{
		"idMeal":       id,
		"strMeal":      name,
		"strMealThumb": "https://img.example/" + id + ".jpg",
	}
}

// fullRecord builds a lookup.php/search.php-shaped entry.
func fullRecord(id, name, category, area string) map[string]any {
	return map[string]any{
		"idMeal":          id,
		"strMeal":         name,
		"strCategory":     category,
		"strArea":         area,
		"strInstructions": "Cook it well.",
		"strMealThumb":    "https://img.example/" + id + ".jpg",
		"strTags":         "Quick,Comfort",
		"strYoutube":      "",
		"strSource":       "",
		"strIngredient1":  "Salt",
		"strMeasure1":     "1 tsp",
		"strIngredient2":  "Pepper",
		"strMeasure2":     "",
	}
}

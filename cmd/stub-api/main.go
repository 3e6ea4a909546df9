// The stub API serves synthetic source tables over the same PostgREST-style
// wire dialect the hosted store exposes, so the portal server can run locally
// with PORTAL_STORE_BACKEND=rest and PORTAL_STORE_BASE_URL=http://localhost:9090
// and no real database.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ignite/pipeline-portal/internal/tabular"
)

func main() {
	log.Println("╔════════════════════════════════════════════════════════════╗")
	log.Println("║  WARNING: This is a STUB data API for local testing ONLY. ║")
	log.Println("║  All rows are SYNTHETIC.                                  ║")
	log.Println("║                                                           ║")
	log.Println("║  For the REAL server, run:                                ║")
	log.Println("║    go run cmd/server/main.go                              ║")
	log.Println("╚════════════════════════════════════════════════════════════╝")

	store := tabular.NewMemStore()
	seed(store, time.Now().UTC())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"pipeline-portal-stub","warning":"THIS IS A STUB - all rows are synthetic"}`))
	})
	mux.HandleFunc("GET /{table}", func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rows, err := store.Execute(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []tabular.Row{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			log.Printf("encode %s response: %v", q.Table, err)
		}
	})

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "9090"
	}
	addr := ":" + port
	log.Printf("Stub data API listening on %s (tables: replies, engaged_leads, meetings_booked, campaign_reporting, crm_leads)", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Stub server error: %v", err)
	}
}

// parseQuery translates the PostgREST-style query string into a store query.
// Filters arrive as col=op.value; select, order, limit, and offset are
// reserved parameter names.
func parseQuery(r *http.Request) (tabular.Query, error) {
	q := tabular.NewQuery(r.PathValue("table"))

	for key, values := range r.URL.Query() {
		for _, value := range values {
			switch key {
			case "select":
				if value != "" {
					q.Columns = strings.Split(value, ",")
				}
			case "order":
				col, dir, _ := strings.Cut(value, ".")
				q.OrderBy = col
				q.Desc = dir == "desc"
			case "limit":
				n, err := strconv.Atoi(value)
				if err != nil {
					return q, fmt.Errorf("invalid limit %q", value)
				}
				q.Limit = n
			case "offset":
				n, err := strconv.Atoi(value)
				if err != nil {
					return q, fmt.Errorf("invalid offset %q", value)
				}
				q.Offset = n
			default:
				opStr, raw, ok := strings.Cut(value, ".")
				if !ok {
					return q, fmt.Errorf("invalid filter %s=%s (want op.value)", key, value)
				}
				op := tabular.Op(opStr)
				switch op {
				case tabular.OpEq, tabular.OpGTE, tabular.OpLT:
				default:
					return q, fmt.Errorf("unsupported operator %q on column %s", opStr, key)
				}
				q.Filters = append(q.Filters, tabular.Filter{Column: key, Op: op, Value: raw})
			}
		}
	}
	return q, nil
}

// seed fills the store with a deterministic month of synthetic activity for
// two clients so every dashboard view has data out of the box.
func seed(store *tabular.MemStore, now time.Time) {
	clients := []string{"acme", "globex"}
	campaigns := []struct{ id, name string }{
		{"cmp-001", "Q3 Outbound - SaaS"},
		{"cmp-002", "Q3 Outbound - Fintech"},
		{"cmp-003", "Dormant Revival"},
	}
	categories := []string{"Interested", "Not Interested", "Out of office", "Information Request"}
	industries := []string{"Software", "Financial Services", "Healthcare", "Manufacturing"}
	states := []string{"CA", "NY", "TX", "FL", "WA"}
	revenues := []string{"$500K", "$2.5M", "$12M", "$80M", "$1.2B", ""}

	day := now.AddDate(0, 0, -29)
	rowID := 0
	for d := 0; d < 30; d++ {
		date := day.AddDate(0, 0, d)
		for ci, client := range clients {
			for cj, campaign := range campaigns {
				store.Append(tabular.TableCampaignReporting, tabular.Row{
					"date":                  date.Format(time.RFC3339),
					"campaign_id":           campaign.id,
					"campaign_name":         campaign.name,
					"client":                client,
					"emails_sent":           float64(400 + 50*cj + 25*d%200),
					"total_leads_contacted": float64(120 + 10*cj + d%40),
					"bounced":               float64(5 + d%7),
					"interested":            float64(1 + (d+cj)%4),
				})

				replies := 2 + (d+ci+cj)%5
				for i := 0; i < replies; i++ {
					rowID++
					store.Append(tabular.TableReplies, tabular.Row{
						"lead_id":       fmt.Sprintf("lead-%04d", rowID%180),
						"from_email":    fmt.Sprintf("prospect%d@example.com", rowID%180),
						"campaign_id":   campaign.id,
						"client":        client,
						"category":      categories[(rowID+i)%len(categories)],
						"date_received": date.Add(time.Duration(9+i) * time.Hour).Format(time.RFC3339),
					})
				}
			}

			store.Append(tabular.TableEngagedLeads, tabular.Row{
				"client":     client,
				"email":      fmt.Sprintf("engaged%d@example.com", rowID),
				"created_at": date.Add(10 * time.Hour).Format(time.RFC3339),
			})

			if (d+ci)%3 == 0 {
				store.Append(tabular.TableMeetingsBooked, tabular.Row{
					"created_time":     date.Add(14 * time.Hour).Format(time.RFC3339),
					"industry":         industries[(d+ci)%len(industries)],
					"company_hq_state": states[(d+ci)%len(states)],
					"annual_revenue":   revenues[(d+ci)%len(revenues)],
					"year_founded":     strconv.Itoa(1985 + (d*3+ci)%40),
					"client":           client,
					"campaign_name":    campaigns[d%len(campaigns)].name,
				})
			}
		}
	}

	// CRM leads at progressively deeper pipeline stages.
	for i := 0; i < 40; i++ {
		client := clients[i%len(clients)]
		created := now.AddDate(0, 0, -(i % 28))
		lead := tabular.Row{
			"id":           fmt.Sprintf("crm-%03d", i),
			"client":       client,
			"email":        fmt.Sprintf("pipeline%d@example.com", i),
			"lead_name":    fmt.Sprintf("Lead %d", i),
			"company_name": fmt.Sprintf("Company %d", i),
			"created_at":   created.Format(time.RFC3339),
		}
		stages := []string{"meeting_booked", "showed_up_disco", "qualified", "demo_booked", "showed_up_demo", "proposal_sent", "closed_won"}
		depth := i % (len(stages) + 1) // 0 means still New
		for s := 0; s < depth; s++ {
			lead[stages[s]] = true
			lead[stages[s]+"_at"] = created.Add(time.Duration(s+1) * 24 * time.Hour).Format(time.RFC3339)
		}
		store.Append(tabular.TableCRMLeads, lead)
	}
}

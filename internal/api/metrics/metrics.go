// Package metrics defines and registers all custom Prometheus metrics for
// the CRM API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at package init via promauto;
// request-level metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// ContactsCreatedTotal counts successfully created contacts.
// Label:
//   - plan: plan of the owning user at creation time ("free", "pro")
var ContactsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_created_total",
		Help:      "Total number of contacts created, by owner plan.",
	},
	[]string{"plan"},
)

// ContactLimitRejectionsTotal counts contact creations rejected by the
// free-plan quota.
var ContactLimitRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_limit_rejections_total",
		Help:      "Total number of contact creations rejected by the free-plan limit.",
	},
)

// AccountsCreatedTotal counts successfully created accounts.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created.",
	},
)

// PlanUpgradesTotal counts upgrade requests applied. Re-upgrading an
// already-pro user still counts a request; the operation is idempotent.
var PlanUpgradesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plan_upgrades_total",
		Help:      "Total number of plan upgrade requests applied.",
	},
)

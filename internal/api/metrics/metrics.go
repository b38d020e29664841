// Package metrics defines and registers all custom Prometheus metrics for the
// VoiceLink API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto, so the HTTP /metrics endpoint picks them up automatically.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voicelink"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - user_type: "voice_actor" or "client"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by user type.",
	},
	[]string{"user_type"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfileSavesTotal counts successful profile upserts.
// Label:
//   - profile_type: "voice_actor" or "client"
var ProfileSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_saves_total",
		Help:      "Total number of profile upserts, by profile type.",
	},
	[]string{"profile_type"},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// ConversationStartsTotal counts conversation start requests.
// Label:
//   - result: "created" (new thread) or "existing" (dedup replay)
var ConversationStartsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversation_starts_total",
		Help:      "Total number of conversation start requests, by result (created/existing).",
	},
	[]string{"result"},
)

// MessagesSentTotal counts messages successfully appended to a thread.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages sent.",
	},
)

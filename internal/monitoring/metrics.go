package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_leads_created_total",
			Help: "Total number of leads created",
		},
		[]string{"source"},
	)

	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_status_transitions_total",
			Help: "Total number of lead status transitions",
		},
		[]string{"to"},
	)

	agreementsSigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_agreements_signed_total",
			Help: "Total number of agreements signed",
		},
	)

	enquiriesRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_enquiries_relayed_total",
			Help: "Total number of enquiry form submissions relayed",
		},
		[]string{"site", "outcome"},
	)

	notificationDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_notification_deliveries_total",
			Help: "Total number of notification email delivery attempts",
		},
		[]string{"status"},
	)

	callbacksDue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_callbacks_due",
			Help: "Number of callback leads due today or overdue",
		},
	)
)

func RecordLeadCreated(source string) {
	if source == "" {
		source = "unknown"
	}
	leadsCreated.WithLabelValues(source).Inc()
}

func RecordStatusTransition(to string) {
	statusTransitions.WithLabelValues(to).Inc()
}

func RecordAgreementSigned() {
	agreementsSigned.Inc()
}

func RecordEnquiry(site, outcome string) {
	enquiriesRelayed.WithLabelValues(site, outcome).Inc()
}

func RecordNotificationDelivery(status string) {
	notificationDeliveries.WithLabelValues(status).Inc()
}

func SetCallbacksDue(n int) {
	callbacksDue.Set(float64(n))
}

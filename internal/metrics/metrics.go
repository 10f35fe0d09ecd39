// Package metrics exposes farm activity as prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-farm/internal/event"
)

const (
	namespace = "farm"

	LabelCrop = "crop"
	LabelItem = "item"
)

// Collector counts domain events. It is an event.Listener.
type Collector struct {
	PlotsPlanted    *prometheus.CounterVec
	CropsHarvested  *prometheus.CounterVec
	CropsDeposited  *prometheus.CounterVec
	ItemsBought     *prometheus.CounterVec
	ItemsSold       *prometheus.CounterVec
	MoneySpent      prometheus.Counter
	MoneyEarned     prometheus.Counter
	EffectsInFlight prometheus.Gauge
}

// NewCollector registers all collectors on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		PlotsPlanted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plots_planted_total",
			Help:      "Seeds planted, by crop.",
		}, []string{LabelCrop}),
		CropsHarvested: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crops_harvested_total",
			Help:      "Grown plots cleared into deposit effects, by crop.",
		}, []string{LabelCrop}),
		CropsDeposited: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crops_deposited_total",
			Help:      "Deposit effects credited to storage, by item.",
		}, []string{LabelItem}),
		ItemsBought: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_bought_total",
			Help:      "Units bought in the shop, by item.",
		}, []string{LabelItem}),
		ItemsSold: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_sold_total",
			Help:      "Units sold in the shop, by item.",
		}, []string{LabelItem}),
		MoneySpent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "money_spent_total",
			Help:      "Money spent buying items.",
		}),
		MoneyEarned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "money_earned_total",
			Help:      "Money earned selling items.",
		}),
		EffectsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deposit_effects_in_flight",
			Help:      "Harvested crops still flying to storage.",
		}),
	}
}

func (c *Collector) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.PlotPlantedData:
		c.PlotsPlanted.WithLabelValues(data.Crop.Name()).Inc()
	case event.CropHarvestedData:
		c.CropsHarvested.WithLabelValues(data.Crop.Name()).Inc()
		c.EffectsInFlight.Inc()
	case event.CropDepositedData:
		c.CropsDeposited.WithLabelValues(data.Item.Name()).Inc()
		c.EffectsInFlight.Dec()
	case event.TradeData:
		switch e.Type {
		case event.ItemBought:
			c.ItemsBought.WithLabelValues(data.Item.Name()).Add(float64(data.Units))
			c.MoneySpent.Add(float64(data.Money))
		case event.ItemSold:
			c.ItemsSold.WithLabelValues(data.Item.Name()).Add(float64(data.Units))
			c.MoneyEarned.Add(float64(data.Money))
		}
	}
}

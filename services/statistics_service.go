package services

import (
	"sort"
	"time"

	"tableside/entity"
	"tableside/repository"
)

type StatisticsService struct {
	Repo *repository.OrderRepository

	// Now is swappable so day boundaries are testable.
	Now func() time.Time
}

func NewStatisticsService(repo *repository.OrderRepository) *StatisticsService {
	return &StatisticsService{Repo: repo, Now: time.Now}
}

type ProductStat struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

type TableStat struct {
	TableID uint  `json:"tableId"`
	Count   int   `json:"count"`
	Revenue int64 `json:"revenue"`
}

type Statistics struct {
	TotalOrdersToday              int            `json:"totalOrdersToday"`
	TotalRevenueToday             int64          `json:"totalRevenueToday"`
	MostOrderedProducts           []ProductStat  `json:"mostOrderedProducts"`
	OrdersByTable                 []TableStat    `json:"ordersByTable"`
	OrdersByStatus                map[string]int `json:"ordersByStatus"`
	AveragePreparationTimeMinutes float64        `json:"averagePreparationTimeMinutes"`
}

// Calculate scans today's orders (local midnight cutoff, inclusive) and the
// all-time set. Revenue sums every status, cancelled included; OrdersByStatus
// carries the cancelled count for callers that want to subtract it.
func (s *StatisticsService) Calculate(restID uint) (*Statistics, error) {
	now := s.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.Repo.ListSince(restID, midnight)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.ListWithItems(restID)
	if err != nil {
		return nil, err
	}

	out := &Statistics{
		TotalOrdersToday: len(today),
		OrdersByStatus:   map[string]int{},
	}

	byTable := map[uint]*TableStat{}
	for _, o := range today {
		out.TotalRevenueToday += o.Total
		out.OrdersByStatus[o.OrderStatus.StatusName]++

		ts, ok := byTable[o.TableID]
		if !ok {
			ts = &TableStat{TableID: o.TableID}
			byTable[o.TableID] = ts
		}
		ts.Count++
		ts.Revenue += o.Total
	}
	for _, ts := range byTable {
		out.OrdersByTable = append(out.OrdersByTable, *ts)
	}
	sort.Slice(out.OrdersByTable, func(i, j int) bool {
		a, b := out.OrdersByTable[i], out.OrdersByTable[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.TableID < b.TableID
	})

	out.MostOrderedProducts = topProducts(all, 10)
	out.AveragePreparationTimeMinutes = averagePreparationMinutes(all)

	return out, nil
}

// Top products by cumulative quantity across the all-time set. Sort is
// deterministic: quantity descending, then product ID ascending.
func topProducts(orders []entity.Order, limit int) []ProductStat {
	acc := map[uint]*ProductStat{}
	for _, o := range orders {
		for _, it := range o.Items {
			ps, ok := acc[it.ProductID]
			if !ok {
				ps = &ProductStat{ProductID: it.ProductID, Name: it.Name}
				acc[it.ProductID] = ps
			}
			ps.Quantity += int64(it.Qty)
		}
	}

	out := make([]ProductStat, 0, len(acc))
	for _, ps := range acc {
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Average of updatedAt minus createdAt over ready/delivered orders, in
// minutes. Samples outside (0, 24h) are discarded as noise; no samples
// yields 0.
func averagePreparationMinutes(orders []entity.Order) float64 {
	var sum time.Duration
	var n int
	for _, o := range orders {
		st := o.OrderStatus.StatusName
		if st != entity.StatusReady && st != entity.StatusDelivered {
			continue
		}
		d := o.UpdatedAt.Sub(o.CreatedAt)
		if d <= 0 || d >= 24*time.Hour {
			continue
		}
		sum += d
		n++
	}
	if n == 0 {
		return 0
	}
	return sum.Minutes() / float64(n)
}

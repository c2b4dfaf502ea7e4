package http

import (
	"context"
	"fmt"
	"strings"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
)

// adminScreen routes an admin panel action. The caller has already verified
// that the user is staff.
func (s *Server) adminScreen(ctx context.Context, action string) (Reply, error) {
	switch action {
	case "admin:stats":
		return s.adminStats(ctx)
	case "admin:orders:new":
		return s.adminQueue(ctx, order.StatusNew)
	case "admin:orders:review":
		return s.adminQueue(ctx, order.StatusInReview)
	case "admin:orders:done":
		return s.adminQueue(ctx, order.StatusDone)
	case "admin:orders:all":
		return s.adminHistogram(ctx)
	}
	return adminMenuReply(), nil
}

func adminMenuActions() []ReplyAction {
	return []ReplyAction{
		{Code: "admin:stats", Label: "Stats"},
		{Code: "admin:orders:new", Label: "New orders"},
		{Code: "admin:orders:review", Label: "In review"},
		{Code: "admin:orders:done", Label: "Completed"},
		{Code: "admin:orders:all", Label: "All orders"},
		{Code: "menu", Label: "Back to menu"},
	}
}

func adminMenuReply() Reply {
	return Reply{
		Text:    "Admin panel.",
		Actions: adminMenuActions(),
	}
}

func (s *Server) adminStats(ctx context.Context) (Reply, error) {
	stats, err := s.getStatsHandler.Handle(ctx, queries.NewGetStatsQuery())
	if err != nil {
		return Reply{}, err
	}

	text := fmt.Sprintf(
		"Stats\nUsers: %d\nOrders: %d\nNew: %d\nIn review: %d",
		stats.Users, stats.Orders, stats.NewOrders, stats.OrdersInReview)
	return Reply{Text: text, Actions: adminMenuActions()}, nil
}

func (s *Server) adminQueue(ctx context.Context, status order.Status) (Reply, error) {
	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return Reply{}, err
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx, query)
	if err != nil {
		return Reply{}, err
	}

	if len(orders) == 0 {
		text := fmt.Sprintf("No orders with status %q.", status.String())
		return Reply{Text: text, Actions: adminMenuActions()}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Orders with status %q:\n", status.String())
	for _, resp := range orders {
		fmt.Fprintf(&b, "\n#%d %s from user %d\n%s, budget %s %s",
			resp.ID,
			resp.CreatedAt.UTC().Format("2006-01-02"),
			resp.UserID,
			resp.Category.Label(),
			resp.Budget,
			resp.Currency.Label(),
		)
	}
	return Reply{Text: b.String(), Actions: adminMenuActions()}, nil
}

// adminHistogram shows how many orders sit in every status.
func (s *Server) adminHistogram(ctx context.Context) (Reply, error) {
	orders, err := s.getAllOrdersHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		return Reply{}, err
	}

	counts := make(map[order.Status]int)
	for _, resp := range orders {
		counts[resp.Status]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "All orders: %d\n", len(orders))
	statuses := []order.Status{
		order.StatusNew,
		order.StatusInReview,
		order.StatusDone,
		order.StatusNotCompleted,
		order.StatusRejected,
	}
	for _, status := range statuses {
		fmt.Fprintf(&b, "\n%s: %d", status.String(), counts[status])
	}
	return Reply{Text: b.String(), Actions: adminMenuActions()}, nil
}

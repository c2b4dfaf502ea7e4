package http

// Static conversational screens. Texts live here rather than in the core:
// they are presentation, not business rules.

func menuActions(isAdmin bool) []ReplyAction {
	actions := []ReplyAction{
		{Code: "order:new", Label: "Place an order"},
		{Code: "orders:my", Label: "My orders"},
		{Code: "profile", Label: "Profile"},
		{Code: "info", Label: "How it works"},
		{Code: "portfolio", Label: "Portfolio"},
		{Code: "contact", Label: "Contact us"},
	}
	if isAdmin {
		actions = append(actions, ReplyAction{Code: "admin", Label: "Admin panel"})
	}
	return actions
}

func menuReply(isAdmin bool) Reply {
	return Reply{
		Text:    "Main menu. What would you like to do?",
		Actions: menuActions(isAdmin),
	}
}

func agreementReply() Reply {
	return Reply{
		Text: "Before placing an order, please accept the terms of service:\n\n" +
			"1. Orders are estimated individually; the budget you enter is a starting point, not a quote.\n" +
			"2. Work starts after the order is accepted and the details are agreed.\n" +
			"3. Your contact data is used only to discuss your order.",
		Actions: []ReplyAction{
			{Code: "agreement:accept", Label: "Accept"},
			{Code: "menu", Label: "Back to menu"},
		},
	}
}

func infoReply(isAdmin bool) Reply {
	return Reply{
		Text: "How it works:\n\n" +
			"1. Describe your project in the order wizard.\n" +
			"2. We review it and get back to you to agree the details.\n" +
			"3. You follow the progress and receive the result.",
		Actions: menuActions(isAdmin),
	}
}

func portfolioReply(isAdmin bool) Reply {
	return Reply{
		Text: "Recent projects:\n\n" +
			"- Support chat bot for an online school\n" +
			"- E-commerce website with payment integration\n" +
			"- Booking bot for a beauty salon",
		Actions: menuActions(isAdmin),
	}
}

func contactReply(isAdmin bool) Reply {
	return Reply{
		Text:    "Questions? Write to us directly and we will answer as soon as we can.",
		Actions: menuActions(isAdmin),
	}
}

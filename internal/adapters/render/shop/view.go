package shop

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/shopassist/internal/application"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const priceUnavailable = "price unavailable"

func RenderCart(cart domain.Cart) (string, error) {
	return render(func(s styles) string { return cartView(cart, s) })
}

func RenderSearch(results []application.KeywordResult) (string, error) {
	return render(func(s styles) string { return searchView(results, s) })
}

func RenderProduct(product domain.Product) (string, error) {
	return render(func(s styles) string { return productDetailView(product, s) })
}

func RenderSession(session domain.Session, cartID string, itemCount int) (string, error) {
	return render(func(s styles) string { return sessionView(session, cartID, itemCount, s) })
}

func cartView(cart domain.Cart, s styles) string {
	lines := []string{s.title.Render("Cart")}
	if cart.ID != "" {
		lines = append(lines, s.header.Render(fmt.Sprintf("%s cart %s, items: %d", cart.Kind, cart.ID, cart.ItemCount())))
	}

	if cart.IsEmpty() {
		lines = append(lines, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range cart.Items {
		lines = append(lines, s.section.Render(lineItemView(item, s)))
	}

	total := "total: " + formatMoney(cart.GrandTotal)
	lines = append(lines, s.section.Render(s.total.Render(total)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func lineItemView(item domain.LineItem, s styles) string {
	name := strings.TrimSpace(item.ProductName)
	if name == "" {
		name = item.SKU
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.name.Render(name),
		s.detail.Render(fmt.Sprintf("sku: %s", item.SKU)),
		s.detail.Render(fmt.Sprintf("%d x %s = %s", item.Quantity, formatMoney(item.UnitPrice), formatMoney(item.Subtotal()))),
	)
}

func searchView(results []application.KeywordResult, s styles) string {
	lines := []string{s.title.Render("Search results")}
	if len(results) == 0 {
		lines = append(lines, s.empty.Render("No keywords to search."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, result := range results {
		lines = append(lines, s.section.Render(keywordView(result, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keywordView(result application.KeywordResult, s styles) string {
	parts := []string{s.header.Render(fmt.Sprintf("%q: %d product(s)", result.Keyword, len(result.Result.Products)))}

	if result.Err != nil {
		parts = append(parts, s.warning.Render("search failed: "+result.Err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if len(result.Result.Products) == 0 {
		parts = append(parts, s.empty.Render("No products found."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, product := range result.Result.Products {
		parts = append(parts, productSummary(product, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func productSummary(product domain.Product, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(product.Name),
		" ",
		s.header.Render("["+product.SKU+"]"),
		" ",
		priceView(product, s),
	)
}

func productDetailView(product domain.Product, s styles) string {
	lines := []string{
		s.name.Render(product.Name),
		s.detail.Render("sku: " + product.SKU),
		priceView(product, s),
	}
	if unit := strings.TrimSpace(product.Unit); unit != "" {
		lines = append(lines, s.detail.Render("unit: "+unit))
	}
	if description := strings.TrimSpace(product.Description); description != "" {
		lines = append(lines, s.section.Render(s.detail.Render(description)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// priceView shows the final price, with the pre-discount price struck
// through when a discount applies.
func priceView(product domain.Product, s styles) string {
	if product.PriceUnavailable() {
		return s.warning.Render(priceUnavailable)
	}

	final := *product.Price
	if product.Discount == nil || (product.Discount.AmountOff <= 0 && product.Discount.PercentOff <= 0) {
		return s.price.Render(formatMoney(&final))
	}

	regular := final
	regular.Amount += product.Discount.AmountOff

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.strike.Render(formatMoney(&regular)),
		" ",
		s.price.Render(formatMoney(&final)),
		" ",
		s.discount.Render(fmt.Sprintf("-%.0f%%", product.Discount.PercentOff)),
	)
}

func sessionView(session domain.Session, cartID string, itemCount int, s styles) string {
	lines := []string{s.title.Render("Session")}

	switch session.State {
	case domain.SessionLoggedIn:
		lines = append(lines, s.detail.Render("signed in as "+session.Identity()))
	case domain.SessionOfflineLoggedIn:
		lines = append(lines, s.warning.Render("offline as "+session.Identity()))
	default:
		lines = append(lines, s.empty.Render("not signed in"))
	}

	if cartID == "" {
		lines = append(lines, s.header.Render("cart: none"))
	} else {
		lines = append(lines, s.header.Render(fmt.Sprintf("cart: %s (%d items)", cartID, itemCount)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatMoney groups thousands with '.' and uses ',' for decimals.
func formatMoney(m *domain.Money) string {
	if m == nil {
		return priceUnavailable
	}

	text := groupAmount(m.Amount)
	if currency := strings.TrimSpace(m.Currency); currency != "" {
		text += " " + currency
	}

	return text
}

func groupAmount(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	cents := int64(math.Round(amount * 100))
	whole := strconv.FormatInt(cents/100, 10)
	fraction := cents % 100

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	text := grouped.String()
	if fraction != 0 {
		text += "," + strings.TrimRight(fmt.Sprintf("%02d", fraction), "0")
	}
	if negative {
		text = "-" + text
	}

	return text
}

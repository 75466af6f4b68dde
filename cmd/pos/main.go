package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/catalog"
	"github.com/example/coffee-pos/internal/checkout"
	"github.com/example/coffee-pos/internal/client"
	"github.com/example/coffee-pos/internal/config"
	"github.com/example/coffee-pos/internal/domain/cart"
	"github.com/example/coffee-pos/internal/domain/product"
	"github.com/example/coffee-pos/internal/reports"
	"github.com/example/coffee-pos/internal/session"
)

// register holds the state of one terminal session: the catalog on screen,
// the open cart and the services behind them.
type register struct {
	cfg       config.Config
	session   *session.Session
	client    *client.Client
	loader    *catalog.Loader
	submitter *checkout.Submitter
	reports   *reports.Service

	products []product.Product
	cart     *cart.Cart
	in       *bufio.Scanner
}

func main() {
	cfg := config.Load()

	sess := session.New()
	api := client.New(cfg.APIBaseURL, sess)

	r := &register{
		cfg:       cfg,
		session:   sess,
		client:    api,
		loader:    catalog.NewLoader(api),
		submitter: checkout.NewSubmitter(api),
		reports:   reports.NewService(api),
		cart:      cart.New(),
		in:        bufio.NewScanner(os.Stdin),
	}

	log.Printf("[POS] Register connecting to %s", cfg.APIBaseURL)
	fmt.Println("Coffee Shop POS")

	if !r.login() {
		return
	}
	r.refreshCatalog()
	r.loop()
}

// login prompts for credentials until a login succeeds or the operator gives
// up with an empty username.
func (r *register) login() bool {
	for {
		username := r.prompt("Username (empty to quit): ")
		if username == "" {
			return false
		}
		password := r.prompt("Password: ")

		ctx, cancel := r.callCtx()
		err := r.client.Login(ctx, username, password)
		cancel()
		if err == nil {
			fmt.Printf("Logged in as %s\n", r.session.Username())
			return true
		}
		if errors.Is(err, client.ErrInvalidCredentials) {
			fmt.Println("Invalid credentials, try again.")
			continue
		}
		fmt.Printf("Login failed: %v\n", err)
	}
}

func (r *register) loop() {
	r.printHelp()
	for {
		line := r.prompt("> ")
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "list":
			r.printCatalog()
		case "add":
			r.add(arg)
		case "remove":
			r.remove(arg)
		case "cart":
			r.printCart()
		case "clear":
			r.clear()
		case "checkout":
			r.checkout()
		case "reports":
			r.printReports(arg)
		case "refresh":
			r.refreshCatalog()
		case "help":
			r.printHelp()
		case "logout", "quit", "exit":
			r.client.Logout()
			fmt.Println("Goodbye.")
			return
		default:
			fmt.Printf("Unknown command %q, try 'help'.\n", cmd)
		}
	}
}

func (r *register) refreshCatalog() {
	ctx, cancel := r.callCtx()
	defer cancel()

	products, fromFallback := r.loader.Load(ctx)
	r.products = products
	if fromFallback {
		fmt.Println("Server unreachable, showing the demo catalog.")
	}
	r.printCatalog()
}

func (r *register) printCatalog() {
	fmt.Println("#   Item                     Price   In stock")
	for i, p := range r.products {
		stock := strconv.Itoa(p.Stock)
		if !p.InStock() {
			stock = "sold out"
		}
		fmt.Printf("%-3d %-24s %7s   %s\n", i+1, p.Name, p.Price.StringFixed(2), stock)
	}
}

// add puts one unit of the numbered product in the cart.
func (r *register) add(arg string) {
	p, ok := r.pick(arg)
	if !ok {
		return
	}

	switch err := r.cart.AddItem(p); {
	case errors.Is(err, cart.ErrOutOfStock):
		fmt.Printf("%s is sold out.\n", p.Name)
	case errors.Is(err, cart.ErrStockLimit):
		fmt.Printf("Only %d of %s available.\n", p.Stock, p.Name)
	case err != nil:
		fmt.Printf("Cannot add %s: %v\n", p.Name, err)
	default:
		fmt.Printf("Added %s (x%d in cart).\n", p.Name, r.cart.Quantity(p.ID))
	}
}

// remove takes one unit of the numbered product out of the cart.
func (r *register) remove(arg string) {
	p, ok := r.pick(arg)
	if !ok {
		return
	}

	if err := r.cart.RemoveOneUnit(p.ID); err != nil {
		fmt.Printf("%s is not in the cart.\n", p.Name)
		return
	}
	fmt.Printf("Removed one %s (x%d in cart).\n", p.Name, r.cart.Quantity(p.ID))
}

func (r *register) pick(arg string) (product.Product, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(r.products) {
		fmt.Printf("Pick an item number between 1 and %d.\n", len(r.products))
		return product.Product{}, false
	}
	return r.products[n-1], true
}

func (r *register) printCart() {
	if r.cart.IsEmpty() {
		fmt.Println("The cart is empty.")
		return
	}
	for _, l := range r.cart.Lines() {
		fmt.Printf("%-24s x%-3d %7s\n", l.Name, l.Quantity,
			l.UnitPrice.Mul(decimalFromInt(l.Quantity)).StringFixed(2))
	}
	fmt.Printf("Subtotal: %s\n", r.cart.Total().StringFixed(2))
	fmt.Printf("Tax:      %s\n", r.cart.TaxAmount(r.cfg.TaxRate).StringFixed(2))
	fmt.Printf("Total:    %s\n", r.cart.GrandTotal(r.cfg.TaxRate).StringFixed(2))
}

// clear empties the cart after a confirmation, mirroring the voided-sale
// flow at a real register.
func (r *register) clear() {
	if r.cart.IsEmpty() {
		fmt.Println("The cart is empty.")
		return
	}
	if answer := r.prompt("Clear the cart? (y/n): "); answer != "y" && answer != "yes" {
		return
	}
	r.cart.Clear()
	fmt.Println("Cart cleared.")
}

// checkout confirms the cart and submits it as one order.
func (r *register) checkout() {
	if r.cart.IsEmpty() {
		fmt.Println("The cart is empty.")
		return
	}
	r.printCart()
	if answer := r.prompt("Place this order? (y/n): "); answer != "y" && answer != "yes" {
		fmt.Println("Checkout cancelled.")
		return
	}

	ctx, cancel := r.callCtx()
	receipt, err := r.submitter.Submit(ctx, r.cart, r.cfg.TaxRate)
	cancel()
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Println("Session expired, log in again.")
			if !r.login() {
				os.Exit(0)
			}
			return
		}
		fmt.Printf("Checkout failed, cart kept: %v\n", err)
		return
	}

	fmt.Println("---------- RECEIPT ----------")
	fmt.Printf("Order %s\n", receipt.OrderID)
	for _, l := range receipt.Lines {
		fmt.Printf("%-24s x%-3d %7s\n", l.Name, l.Quantity,
			l.UnitPrice.Mul(decimalFromInt(l.Quantity)).StringFixed(2))
	}
	fmt.Printf("Subtotal: %s\n", receipt.Subtotal.StringFixed(2))
	fmt.Printf("Tax:      %s\n", receipt.Tax.StringFixed(2))
	fmt.Printf("Total:    %s\n", receipt.GrandTotal.StringFixed(2))
	fmt.Println("-----------------------------")

	// Stock changed server-side, pick up the new counts.
	r.refreshCatalog()
}

// printReports shows the sales and profit figures for a day (today when no
// date is given).
func (r *register) printReports(date string) {
	ctx, cancel := r.callCtx()
	snapshot, err := r.reports.Fetch(ctx, date)
	cancel()
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Println("Session expired, log in again.")
			if !r.login() {
				os.Exit(0)
			}
			return
		}
		fmt.Printf("Reports unavailable: %v\n", err)
		return
	}

	fmt.Printf("Reports for %s\n", snapshot.Sales.Date)
	fmt.Printf("  Sales:   %s\n", snapshot.Sales.TotalSales.StringFixed(2))
	fmt.Printf("  Revenue: %s\n", snapshot.Profit.TotalRevenue.StringFixed(2))
	fmt.Printf("  Cost:    %s\n", snapshot.Profit.TotalCost.StringFixed(2))
	fmt.Printf("  Profit:  %s (margin %s%%)\n",
		snapshot.Profit.TotalProfit.StringFixed(2), snapshot.Profit.Margin().String())
}

func (r *register) printHelp() {
	fmt.Println(`Commands:
  list            show the catalog
  add <n>         add one unit of item n to the cart
  remove <n>      remove one unit of item n from the cart
  cart            show the cart and totals
  clear           empty the cart
  checkout        place the order
  reports [date]  daily sales and profit (date YYYY-MM-DD, default today)
  refresh         reload the catalog
  logout          end the session and quit`)
}

func (r *register) prompt(label string) string {
	fmt.Print(label)
	if !r.in.Scan() {
		return ""
	}
	return strings.TrimSpace(r.in.Text())
}

func (r *register) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

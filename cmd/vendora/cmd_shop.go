package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/pkg/cart"
	"github.com/shashiranjanraj/vendora/pkg/catalog"
	"github.com/shashiranjanraj/vendora/pkg/storefront"
	"github.com/shashiranjanraj/vendora/pkg/tokenstore"
)

// shop subcommands drive a running backend from the terminal with the same
// client the storefront UI uses. Tokens persist across invocations in the
// configured token file.
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and buy against a running vendora backend",
}

var (
	shopCategory string
	shopQuery    string
	shopPage     int
	shopItems    []string
)

func init() {
	browseCmd.Flags().StringVar(&shopCategory, "category", catalog.AllCategories, "filter by category slug")
	browseCmd.Flags().StringVar(&shopQuery, "query", "", "case-insensitive name search")
	browseCmd.Flags().IntVar(&shopPage, "page", 1, "page to show")
	buyCmd.Flags().StringSliceVar(&shopItems, "item", nil, "product to buy as id:quantity (repeatable)")

	shopCmd.AddCommand(shopLoginCmd, shopLogoutCmd, browseCmd, buyCmd, ordersCmd)
	rootCmd.AddCommand(shopCmd)
}

func newShopSession() (*storefront.Session, error) {
	tokens, err := tokenstore.NewFile("")
	if err != nil {
		return nil, fmt.Errorf("open token file: %w", err)
	}
	return storefront.NewSession(config.APIBaseURL(), tokens, storefront.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "session expired, run `vendora shop login` again")
	})), nil
}

// vendora shop login <email> — password read from VENDORA_PASSWORD.
var shopLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv("VENDORA_PASSWORD")
		if password == "" {
			return fmt.Errorf("set VENDORA_PASSWORD")
		}

		s, err := newShopSession()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := s.Login(ctx, args[0], password); err != nil {
			return err
		}

		user, _ := s.CurrentUser()
		fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var shopLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShopSession()
		if err != nil {
			return err
		}
		s.Logout()
		fmt.Println("signed out")
		return nil
	},
}

// vendora shop browse — fetch the catalogue and page through it locally.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List products with filtering and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShopSession()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		products, err := s.Products(ctx)
		if err != nil {
			// Browsing still works without a reachable backend.
			fmt.Fprintf(os.Stderr, "backend unavailable (%v), showing the demo catalogue\n", err)
			products = catalog.DefaultProducts()
		}
		categories, err := s.Categories(ctx)
		if err != nil {
			categories = catalog.DefaultCategories()
		}

		view := catalog.NewView(products, categories)
		view.SetCategory(shopCategory)
		view.SetQuery(shopQuery)
		view.SetPage(shopPage)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK")
		for _, p := range view.Visible() {
			stock := strconv.Itoa(p.Stock)
			if !p.InStock() {
				stock = "out of stock"
			}
			fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%s\n", p.ID, p.Name, p.Price, p.Category, stock)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\npage %d of %d%s\n", view.Page(), view.TotalPages(), windowLine(view))
		return nil
	},
}

func windowLine(view *catalog.View) string {
	window := view.Window()
	if window == nil {
		return ""
	}

	parts := make([]string, len(window))
	for i, page := range window {
		if page == catalog.Ellipsis {
			parts[i] = "…"
			continue
		}
		if page == view.Page() {
			parts[i] = "[" + strconv.Itoa(page) + "]"
			continue
		}
		parts[i] = strconv.Itoa(page)
	}
	return "   " + strings.Join(parts, " ")
}

// vendora shop buy --item 1:2 --item 3:1 — fill a cart and check out.
var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Place an order for the given items",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(shopItems) == 0 {
			return fmt.Errorf("nothing to buy, pass --item id:quantity")
		}

		s, err := newShopSession()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		products, err := s.Products(ctx)
		if err != nil {
			return err
		}
		byID := make(map[int]catalog.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		c := cart.New()
		for _, spec := range shopItems {
			id, qty, err := parseItem(spec)
			if err != nil {
				return err
			}
			product, ok := byID[id]
			if !ok {
				return fmt.Errorf("no product with id %d", id)
			}
			c.Add(product, qty)
		}

		fmt.Printf("subtotal $%.2f, shipping $%.2f, tax $%.2f — estimated total $%.2f\n",
			c.Subtotal(), cart.Shipping(c.Subtotal()), cart.Tax(c.Subtotal()), c.Total())

		order, err := s.Checkout(ctx, c)
		if err != nil {
			return err
		}
		fmt.Printf("order %s placed, total $%.2f\n", order.Number, order.Total)
		return nil
	},
}

func parseItem(spec string) (id, qty int, err error) {
	idPart, qtyPart, found := strings.Cut(spec, ":")
	if !found {
		return 0, 0, fmt.Errorf("malformed --item %q, want id:quantity", spec)
	}
	if id, err = strconv.Atoi(idPart); err != nil {
		return 0, 0, fmt.Errorf("malformed --item %q: %w", spec, err)
	}
	if qty, err = strconv.Atoi(qtyPart); err != nil {
		return 0, 0, fmt.Errorf("malformed --item %q: %w", spec, err)
	}
	return id, qty, nil
}

// vendora shop orders — print the signed-in user's order history.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your order history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShopSession()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := s.Resume(ctx); err != nil {
			return fmt.Errorf("not signed in, run `vendora shop login` first: %w", err)
		}

		orders, err := s.Orders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no orders yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NUMBER\tSTATUS\tTOTAL\tPLACED\tITEMS")
		for _, o := range orders {
			names := make([]string, len(o.Items))
			for i, item := range o.Items {
				names[i] = fmt.Sprintf("%s ×%d", item.Name, item.Quantity)
			}
			fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\n",
				o.Number, o.Status, o.Total, o.CreatedAt.Format("2006-01-02"), strings.Join(names, ", "))
		}
		return w.Flush()
	},
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/shop"
)

func main() {
	apiURL := flag.String("api", envOr("SHOP_API_URL", "http://localhost:5000"), "storefront API base URL")
	add := flag.String("add", "", "comma-separated product ids to add to the cart, repeat an id for more units")
	timeout := flag.Duration("timeout", 30*time.Second, "overall request timeout")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	ids, err := parseIDs(*add)
	if err != nil {
		log.WithError(err).Fatal("invalid -add")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, os.Stdout, shop.NewClient(*apiURL, nil), ids); err != nil {
		log.WithError(err).Fatal("shop failed")
	}
}

// run prints the catalog, fills the cart with ids, prints it and checks out.
// Checkout failures are printed rather than returned.
func run(ctx context.Context, out io.Writer, client *shop.Client, ids []int64) error {
	products, err := client.Products(ctx)
	if err != nil {
		return err
	}
	printCatalog(out, products)

	byID := make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	cart := shop.NewCart()
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return fmt.Errorf("product %d not in catalog", id)
		}
		cart.Add(p)
	}

	fmt.Fprintln(out)
	printCart(out, cart)

	url, err := client.Checkout(ctx, cart)
	switch {
	case errors.Is(err, shop.ErrCartEmpty):
		fmt.Fprintln(out, "Cart is empty, nothing to check out.")
	case err != nil:
		fmt.Fprintln(out, err.Error())
	default:
		fmt.Fprintf(out, "Redirect to: %s\n", url)
	}
	return nil
}

func printCatalog(out io.Writer, products []catalog.Product) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBRAND\tCATEGORY\tPRICE\tRATING\tSIZES")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t₹%.2f\t%.1f\t%s\n",
			p.ID, p.Title, p.Brand, p.Category, p.Price, p.Rating, strings.Join(p.Sizes, ","))
	}
	tw.Flush()
}

func printCart(out io.Writer, cart *shop.Cart) {
	fmt.Fprintf(out, "Cart (%d)\n", cart.Len())
	for _, it := range cart.Items() {
		fmt.Fprintf(out, "  %s x%d  ₹%.2f\n", it.Title, it.Quantity, it.Price*float64(it.Quantity))
	}
	fmt.Fprintf(out, "Total: ₹%.2f\n", cart.Total())
}

func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad product id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

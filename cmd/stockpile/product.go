// Product subcommands: stock products, list them, and sell units.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockpile-hq/stockpile/pkg/types"
)

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage stocked products",
	}
	cmd.AddCommand(newProductAddCmd())
	cmd.AddCommand(newProductListCmd())
	cmd.AddCommand(newProductUpdateCmd())
	cmd.AddCommand(newProductSellCmd())
	cmd.AddCommand(newSalesCmd())
	return cmd
}

func newProductAddCmd() *cobra.Command {
	var p types.Product
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Stock a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.CreateProduct(&p); err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stocked product %d: %s (%.2f, %d in stock)\n", p.ID, p.Name, p.Price, p.Stock)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Name, "name", "", "product name (required)")
	cmd.Flags().Float64Var(&p.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&p.Stock, "stock", 0, "initial stock")
	cmd.Flags().StringVar(&p.Category, "category", "", "category")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newProductListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := store.ListProducts()
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, products)
			}
			for _, p := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4d %-24s %-12s %10.2f %6d\n",
					p.ID, p.Name, p.Category, p.Price, p.Stock)
			}
			return nil
		},
	}
}

func newProductUpdateCmd() *cobra.Command {
	var in types.Product
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product (only the given flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := store.GetProduct(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = in.Name
			}
			if cmd.Flags().Changed("price") {
				p.Price = in.Price
			}
			if cmd.Flags().Changed("stock") {
				p.Stock = in.Stock
			}
			if cmd.Flags().Changed("category") {
				p.Category = in.Category
			}

			if err := store.UpdateProduct(p); err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated product %d\n", p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "product name")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&in.Stock, "stock", 0, "stock on hand")
	cmd.Flags().StringVar(&in.Category, "category", "", "category")
	return cmd
}

func newProductSellCmd() *cobra.Command {
	var quantity int
	cmd := &cobra.Command{
		Use:   "sell <id>",
		Short: "Sell units of a product",
		Long: `Sell decrements stock and records the sale in the transactions
ledger atomically, then folds the sale amount into total revenue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sale, err := store.Sell(id, quantity)
			if err != nil {
				return err
			}
			st, err := store.AddRevenue(sale.Amount)
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(cmd, sale)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sold %d x product %d for %.2f (ref %s)\n",
				sale.Quantity, sale.ProductID, sale.Amount, sale.Reference)
			fmt.Fprintf(cmd.OutOrStdout(), "Total revenue: %.2f\n", st.TotalRevenue)
			return nil
		},
	}
	cmd.Flags().IntVar(&quantity, "quantity", 1, "units to sell")
	return cmd
}

func newSalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "List recorded sales, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sales, err := store.ListSales()
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, sales)
			}
			for _, sale := range sales {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4d %-38s product=%-4d qty=%-4d %10.2f  %s\n",
					sale.ID, sale.Reference, sale.ProductID, sale.Quantity, sale.Amount,
					sale.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/client/services"
)

// Products lists the whole catalogue with a count label, distinguishing the
// empty catalogue from a failed fetch.
func (a *App) Products(ctx context.Context) error {
	products, err := a.products.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	renderProductList(products)
	return nil
}

// Search filters the catalogue by title/description. With no query it
// behaves like Products.
func (a *App) Search(ctx context.Context, query string) error {
	products, err := a.products.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	matched := services.Filter(products, query)
	if len(matched) == 0 {
		printlnFn("Aucun produit trouvé pour \"" + query + "\". Essayez avec d'autres mots-clés.")
		return nil
	}
	if len(matched) < len(products) {
		printlnFn(fmt.Sprintf("%s sur %d au total", countLabel(len(matched)), len(products)))
	}
	renderProducts(matched)
	return nil
}

// Show fetches and displays a single product with its artisan contact info.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	detail, err := a.products.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	renderProductDetail(detail)
	return nil
}

// EditProduct updates one product's title, description and price.
func (a *App) EditProduct(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter product id to edit", os.Stdout)
	if err != nil {
		return err
	}

	upd := models.ProductUpdate{}
	if upd.Title, err = getSimpleText(a.reader, "Enter new title", os.Stdout); err != nil {
		return err
	}
	if upd.Description, err = getMultiline(a.reader, "Enter new description", os.Stdout); err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Enter new price", os.Stdout)
	if err != nil {
		return err
	}
	if upd.Price, err = models.ParsePrice(priceText); err != nil {
		printlnFn("Erreur :", err.Error())
		return nil
	}

	if err := a.products.Edit(ctx, id, upd); err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Produit mis à jour avec succès")
	return nil
}

// DeleteProduct deletes one product after confirmation, then invokes the
// supplied refresh callback once so the caller re-fetches the list.
func (a *App) DeleteProduct(ctx context.Context, refresh func(context.Context) error) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter product id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, "Êtes-vous sûr de vouloir supprimer ce produit ? Cette action est irréversible.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Suppression annulée.")
		return nil
	}

	if err := a.products.Delete(ctx, id); err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Produit supprimé avec succès")
	if refresh != nil {
		return refresh(ctx)
	}
	return nil
}

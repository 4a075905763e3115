package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
)

// AddProduct runs the product-creation form: title, description (typed in
// or AI-generated from the title), price, image paths, and an optional
// enhancement pass over the images before upload.
func (a *App) AddProduct(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	p := models.NewProduct{}

	title, err := getSimpleText(a.reader, "Enter product title", os.Stdout)
	if err != nil {
		return err
	}
	p.Title = title

	description, err := a.promptDescription(ctx, title)
	if err != nil {
		return err
	}
	p.Description = description

	priceText, err := getSimpleText(a.reader, "Enter price (TND)", os.Stdout)
	if err != nil {
		return err
	}
	if p.Price, err = models.ParsePrice(priceText); err != nil {
		printlnFn("Erreur :", err.Error())
		return nil
	}

	paths, err := getSimpleText(a.reader, "Enter image file paths (comma separated, empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	for _, part := range strings.Split(paths, ",") {
		if part = strings.TrimSpace(part); part != "" {
			p.ImagePaths = append(p.ImagePaths, part)
		}
	}

	enhance := false
	if len(p.ImagePaths) > 0 {
		if enhance, err = confirm(a.reader, "Améliorer les images avec l'IA avant l'envoi ?", os.Stdout); err != nil {
			return err
		}
	}

	msg, err := a.products.Add(ctx, p, enhance, enhanceProgress)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn(msg)
	return nil
}

// promptDescription either lets the user type the description or generates
// one from the title. A generation failure falls back to manual entry.
func (a *App) promptDescription(ctx context.Context, title string) (string, error) {
	generate, err := confirm(a.reader, "Générer la description avec l'IA ?", os.Stdout)
	if err != nil {
		return "", err
	}

	if generate {
		description, err := a.products.GenerateDescription(ctx, title)
		if err == nil {
			printlnFn("Description générée :")
			printlnFn(description)
			keep, err := confirm(a.reader, "Utiliser cette description ?", os.Stdout)
			if err != nil {
				return "", err
			}
			if keep {
				return description, nil
			}
		} else {
			printlnFn("La génération a échoué, saisissez la description manuellement.")
			a.log.Warn(ctx, "description generation failed", "error", err)
		}
	}

	return getMultiline(a.reader, "Enter product description", os.Stdout)
}

// enhanceProgress prints one line per image as the enhancement pipeline
// advances.
func enhanceProgress(index, total int, name string, err error) {
	if err != nil {
		printlnFn(fmt.Sprintf("[%d/%d] %s : échec de l'amélioration, image originale conservée", index, total, name))
		return
	}
	printlnFn(fmt.Sprintf("[%d/%d] %s : image améliorée", index, total, name))
}

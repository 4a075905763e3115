package cli

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
)

func countLabel(n int) string {
	if n == 1 {
		return "1 produit trouvé"
	}
	return fmt.Sprintf("%d produits trouvés", n)
}

func renderProductList(products []models.Product) {
	if len(products) == 0 {
		printlnFn("Aucun produit disponible")
		return
	}
	if len(products) == 1 {
		printlnFn("1 produit")
	} else {
		printlnFn(fmt.Sprintf("%d produits", len(products)))
	}
	renderProducts(products)
}

func renderProducts(products []models.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, p.Price.Format())
	}
	w.Flush()
}

func renderProductDetail(d *models.ProductDetail) {
	p := d.Product
	printlnFn("Titre:", p.Title)
	printlnFn("Prix:", p.Price.Format())
	printlnFn("Description:", p.Description)
	for _, img := range p.Images {
		printlnFn("Image:", img.URL)
	}
	if d.Artisan != nil {
		printlnFn("Artisan:", d.Artisan.Nom, d.Artisan.Prenom)
		if d.Artisan.Phone != "" {
			printlnFn("Contact WhatsApp:", whatsAppLink(d.Artisan, p))
		} else {
			printlnFn("Aucun numéro de contact disponible pour cet artisan.")
		}
	}
}

// whatsAppLink builds a wa.me deep link with a prefilled inquiry message.
func whatsAppLink(artisan *models.Artisan, p models.Product) string {
	msg := fmt.Sprintf("Hello %s! I'm interested in your product: %s (%s)", artisan.Nom, p.Title, p.Price.Format())
	return fmt.Sprintf("https://wa.me/%s?text=%s", artisan.Phone, url.QueryEscape(msg))
}

func renderUsers(users []models.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOM\tEMAIL\tPHONE\tADMIN")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.FullName(), u.Email, u.Phone, u.IsAdmin)
	}
	w.Flush()
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// productForm is what the product form shows, either blank, loaded from the
// catalog or echoed back after a validation failure.
type productForm struct {
	ID          string
	Action      string
	Name        string
	Description string
	Price       string
	Stock       string
	IsActive    bool
	ImagePath   string
}

func formFromView(p queries.ProductView) productForm {
	id := p.ID.String()
	return productForm{
		ID:          id,
		Action:      "/products/" + id + "/update",
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Stock:       strconv.Itoa(p.Stock),
		IsActive:    p.IsActive,
		ImagePath:   p.ImagePath,
	}
}

func formFromRequest(c echo.Context) productForm {
	return productForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Stock:       c.FormValue("stock"),
		IsActive:    isChecked(c.FormValue("is_active")),
	}
}

func isChecked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// fields parses the submitted values. Every problem is reported at once.
func (f productForm) fields() (commands.ProductFields, error) {
	var problems []error

	price, err := kernel.MoneyFromString(strings.TrimSpace(f.Price))
	if err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", errors.New("must be a non-negative number")))
	}

	stock, err := strconv.Atoi(strings.TrimSpace(f.Stock))
	if err != nil || stock < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("stock", errors.New("must be a non-negative whole number")))
	}

	fields := commands.ProductFields{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Stock:       stock,
		IsActive:    f.IsActive,
	}
	if len(problems) > 0 {
		return fields, errors.Join(problems...)
	}
	return fields, fields.Validate()
}

func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(c.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.internalError(c, "Could not load products.", err)
	}
	return s.render(c, http.StatusOK, "products", "Products", products, "")
}

func (s *Server) NewProductForm(c echo.Context) error {
	return s.render(c, http.StatusOK, "product_form", "New product",
		productForm{Action: "/products/create", Stock: "0", IsActive: true}, "")
}

// CreateProduct accepts an optional image in the same multipart form.
func (s *Server) CreateProduct(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	form := formFromRequest(c)
	form.Action = "/products/create"
	invalid := func(err error) error {
		return s.render(c, http.StatusBadRequest, "product_form", "New product", form, userMessage(err))
	}

	fields, err := form.fields()
	if err != nil {
		return invalid(err)
	}

	var imagePath string
	if fh, fileErr := c.FormFile("image"); fileErr == nil {
		if imagePath, err = s.saveImage(fh); err != nil {
			return invalid(err)
		}
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), fields, imagePath)
	if err != nil {
		return invalid(err)
	}
	if err = s.handlers.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		if statusFor(err) == http.StatusBadRequest {
			return invalid(err)
		}
		return s.internalError(c, "Could not create the product.", err)
	}

	return c.Redirect(http.StatusSeeOther, withToken("/products", currentSession(c).Token))
}

func (s *Server) EditProductForm(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Product not found.")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return c.String(http.StatusNotFound, "Product not found.")
	}
	p, err := s.handlers.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			return c.String(http.StatusNotFound, "Product not found.")
		}
		return s.internalError(c, "Could not load the product.", err)
	}

	return s.render(c, http.StatusOK, "product_form", "Edit "+p.Name, formFromView(p), "")
}

func (s *Server) UpdateProduct(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Product not found.")
	}

	form := formFromRequest(c)
	form.ID = id.String()
	form.Action = "/products/" + form.ID + "/update"
	invalid := func(err error) error {
		return s.render(c, http.StatusBadRequest, "product_form", "Edit product", form, userMessage(err))
	}

	fields, err := form.fields()
	if err != nil {
		return invalid(err)
	}
	cmd, err := commands.NewUpdateProductCommand(id, fields)
	if err != nil {
		return invalid(err)
	}

	if err = s.handlers.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		switch statusFor(err) {
		case http.StatusNotFound:
			return c.String(http.StatusNotFound, "Product not found.")
		case http.StatusBadRequest:
			return invalid(err)
		default:
			return s.internalError(c, "Could not update the product.", err)
		}
	}

	return c.Redirect(http.StatusSeeOther, withToken("/products", currentSession(c).Token))
}

func (s *Server) DeleteProduct(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Product not found.")
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return c.String(http.StatusNotFound, "Product not found.")
	}

	if err = s.handlers.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		if statusFor(err) == http.StatusNotFound {
			return c.String(http.StatusNotFound, "Product not found.")
		}
		return s.internalError(c, "Could not delete the product.", err)
	}

	return c.Redirect(http.StatusSeeOther, withToken("/products", currentSession(c).Token))
}

// UploadProductImage replaces the product picture. Only JPEG, PNG and WebP up
// to 2 MB are accepted.
func (s *Server) UploadProductImage(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Product not found.")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "An image file is required.")
	}
	imagePath, err := s.saveImage(fh)
	if err != nil {
		if errors.Is(err, errImageTooLarge) || errors.Is(err, errImageNotAllowed) {
			return c.String(http.StatusBadRequest, err.Error())
		}
		return s.internalError(c, "Could not store the image.", err)
	}

	cmd, err := commands.NewSetProductImageCommand(id, imagePath)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	if err = s.handlers.SetProductImage.Handle(c.Request().Context(), cmd); err != nil {
		if statusFor(err) == http.StatusNotFound {
			return c.String(http.StatusNotFound, "Product not found.")
		}
		return s.internalError(c, "Could not update the product image.", err)
	}

	return c.Redirect(http.StatusSeeOther, withToken("/products/"+id.String()+"/edit", currentSession(c).Token))
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"
)

// ProductController handles catalog-related requests.
type ProductController struct {
	Products   *repository.Products
	UploadsDir string
	Log        *logrus.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(products *repository.Products, uploadsDir string, log *logrus.Logger) *ProductController {
	return &ProductController{Products: products, UploadsDir: uploadsDir, Log: log}
}

// List retrieves the full catalog.
func (pc *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.List()
	if err != nil {
		respondError(pc.Log, w, err, "Product not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"products": products})
}

// Get retrieves a single product by id.
func (pc *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := pc.Products.Get(pathID(r, "id"))
	if err != nil {
		respondError(pc.Log, w, err, "Product not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"product": product})
}

// Create adds a new product (Admin). The body is either JSON or a multipart
// form carrying an image file; an uploaded file wins over an image URL field.
func (pc *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var name, category, image, description string
	var price float64

	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(utils.MaxUploadSize); err != nil {
			utils.Fail(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		name = r.FormValue("name")
		category = r.FormValue("category")
		description = r.FormValue("description")
		image = r.FormValue("image")
		price, _ = strconv.ParseFloat(r.FormValue("price"), 64)

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			stored, err := utils.SaveImage(pc.UploadsDir, file, header)
			if err != nil {
				utils.Fail(w, http.StatusBadRequest, err.Error())
				return
			}
			image = stored
		case !errors.Is(err, http.ErrMissingFile):
			utils.Fail(w, http.StatusBadRequest, "Failed to read image upload")
			return
		}
	} else {
		var body struct {
			Name        string           `json:"name"`
			Price       models.FlexFloat `json:"price"`
			Category    string           `json:"category"`
			Image       string           `json:"image"`
			Description string           `json:"description"`
		}
		utils.DecodeBody(r, &body)
		name = body.Name
		price = float64(body.Price)
		category = body.Category
		image = body.Image
		description = body.Description
	}

	product, err := pc.Products.Create(name, price, category, image, description)
	if err != nil {
		respondError(pc.Log, w, err, "Product not found")
		return
	}
	utils.OK(w, http.StatusCreated, utils.Envelope{"message": "Product added!", "product": product})
}

// Update edits a product's supplied fields (Admin).
func (pc *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        *string           `json:"name"`
		Price       *models.FlexFloat `json:"price"`
		Category    *string           `json:"category"`
		Description *string           `json:"description"`
	}
	utils.DecodeBody(r, &body)

	patch := repository.ProductPatch{
		Name:        body.Name,
		Category:    body.Category,
		Description: body.Description,
	}
	if body.Price != nil {
		price := float64(*body.Price)
		patch.Price = &price
	}

	product, err := pc.Products.Update(pathID(r, "id"), patch)
	if err != nil {
		respondError(pc.Log, w, err, "Product not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "Product updated!", "product": product})
}

// Delete removes a product (Admin). Deleting an absent id succeeds.
func (pc *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.Products.Delete(pathID(r, "id")); err != nil {
		respondError(pc.Log, w, err, "Product not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "Product deleted!"})
}

// AddReview appends a customer review to a product and refreshes its rating.
func (pc *ProductController) AddReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserName string           `json:"userName"`
		Rating   models.FlexFloat `json:"rating"`
		Comment  string           `json:"comment"`
	}
	utils.DecodeBody(r, &body)

	review, err := pc.Products.AddReview(pathID(r, "id"), body.UserName, float64(body.Rating), body.Comment)
	if err != nil {
		respondError(pc.Log, w, err, "Product not found")
		return
	}
	utils.OK(w, http.StatusCreated, utils.Envelope{"message": "Review added!", "review": review})
}

package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"motomart-api/services"
	"motomart-api/utils"
)

type ListingController struct {
	listings *services.ListingService
}

func NewListingController(listings *services.ListingService) *ListingController {
	return &ListingController{listings: listings}
}

// ListingForm is the multipart form shared by create, update and approve.
// New files arrive under "images", the kept subset of existing URLs under
// "existing_images" as a comma separated list.
type ListingForm struct {
	Make               string `form:"make" binding:"required,min=2"`
	Model              string `form:"model" binding:"required"`
	Year               int    `form:"year" binding:"required,min=1900"`
	Price              int    `form:"price" binding:"required,min=1"`
	KmDriven           int    `form:"km_driven" binding:"min=0"`
	EngineDisplacement int    `form:"engine_displacement" binding:"required,min=1"`
	Registration       string `form:"registration" binding:"required,min=2"`
	Condition          string `form:"condition" binding:"required,oneof=Excellent Good Fair Poor"`
	Description        string `form:"description" binding:"required,min=10"`
	ExistingImages     string `form:"existing_images"`
}

func (f *ListingForm) toInput() services.ListingInput {
	return services.ListingInput{
		Make:               f.Make,
		Model:              f.Model,
		Year:               f.Year,
		Price:              f.Price,
		KmDriven:           f.KmDriven,
		EngineDisplacement: f.EngineDisplacement,
		Registration:       f.Registration,
		Condition:          f.Condition,
		Description:        f.Description,
	}
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// respondServiceError maps service layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.SendValidationError(c, vErr.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrUpload):
		utils.SendError(c, http.StatusBadGateway, "Failed to upload one or more images")
	default:
		utils.SendError(c, http.StatusInternalServerError, "Operation failed")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetListings serves the public storefront index with optional filters.
func (lc *ListingController) GetListings(c *gin.Context) {
	filter := services.ListingFilter{
		Make:      c.Query("make"),
		Condition: c.Query("condition"),
	}
	filter.MinPrice, _ = strconv.Atoi(c.Query("min_price"))
	filter.MaxPrice, _ = strconv.Atoi(c.Query("max_price"))
	filter.MinYear, _ = strconv.Atoi(c.Query("min_year"))
	filter.MaxYear, _ = strconv.Atoi(c.Query("max_year"))

	listings, err := lc.listings.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (lc *ListingController) GetListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	listing, err := lc.listings.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (lc *ListingController) CreateListing(c *gin.Context) {
	var form ListingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	listing, err := lc.listings.Create(c.Request.Context(), form.toInput(), formFiles(c, "images"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Listing created successfully", listing)
}

func (lc *ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form ListingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	kept := services.SplitImageList(form.ExistingImages)
	listing, err := lc.listings.Update(c.Request.Context(), id, form.toInput(), kept, formFiles(c, "images"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Listing updated successfully", listing)
}

func (lc *ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := lc.listings.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Listing deleted successfully", nil)
}

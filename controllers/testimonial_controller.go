package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"motomart-api/services"
	"motomart-api/utils"
)

type TestimonialController struct {
	testimonials *services.TestimonialService
}

func NewTestimonialController(testimonials *services.TestimonialService) *TestimonialController {
	return &TestimonialController{testimonials: testimonials}
}

// TestimonialForm carries at most one new file under "image"; the existing
// URL survives in "existing_image" when kept, and is absent when cleared.
type TestimonialForm struct {
	Name          string `form:"name" binding:"required,min=2"`
	Location      string `form:"location" binding:"required,min=2"`
	Review        string `form:"review" binding:"required,min=10"`
	Rating        int    `form:"rating" binding:"required,min=1,max=5"`
	ExistingImage string `form:"existing_image"`
}

func (f *TestimonialForm) toInput() services.TestimonialInput {
	return services.TestimonialInput{
		Name:     f.Name,
		Location: f.Location,
		Review:   f.Review,
		Rating:   f.Rating,
	}
}

func singleFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

func (tc *TestimonialController) GetTestimonials(c *gin.Context) {
	testimonials, err := tc.testimonials.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (tc *TestimonialController) CreateTestimonial(c *gin.Context) {
	var form TestimonialForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	testimonial, err := tc.testimonials.Create(c.Request.Context(), form.toInput(), singleFile(c, "image"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Testimonial created successfully", testimonial)
}

func (tc *TestimonialController) UpdateTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form TestimonialForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	testimonial, err := tc.testimonials.Update(c.Request.Context(), id, form.toInput(), form.ExistingImage, singleFile(c, "image"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Testimonial updated successfully", testimonial)
}

func (tc *TestimonialController) DeleteTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := tc.testimonials.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Testimonial deleted successfully", nil)
}

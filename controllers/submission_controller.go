package controllers

import (
	"github.com/gin-gonic/gin"
	"motomart-api/services"
	"motomart-api/utils"
	"net/http"
)

type SubmissionController struct {
	submissions *services.SubmissionService
}

func NewSubmissionController(submissions *services.SubmissionService) *SubmissionController {
	return &SubmissionController{submissions: submissions}
}

// SellForm is the public "sell my bike" multipart form.
type SellForm struct {
	Name     string `form:"name" binding:"required,min=2"`
	Phone    string `form:"phone" binding:"required,min=10"`
	Location string `form:"location" binding:"required,min=2"`
	ListingForm
}

// SubmitListing handles the public sell form.
func (sc *SubmissionController) SubmitListing(c *gin.Context) {
	var form SellForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	input := services.SubmissionInput{
		Name:     form.Name,
		Phone:    form.Phone,
		Location: form.Location,
		Listing:  form.toInput(),
	}

	submission, err := sc.submissions.Create(c.Request.Context(), input, formFiles(c, "images"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Submission received! We will review it shortly.", submission)
}

// GetSubmissions lists pending leads for the admin dashboard, newest first.
func (sc *SubmissionController) GetSubmissions(c *gin.Context) {
	submissions, err := sc.submissions.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ApproveSubmission promotes a lead into a live listing. The form carries
// the (possibly admin-edited) attributes plus the kept image subset.
func (sc *SubmissionController) ApproveSubmission(c *gin.Context) {
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
	listing, err := sc.submissions.Approve(c.Request.Context(), id, form.toInput(), kept, formFiles(c, "images"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Submission approved and published", listing)
}

// DeleteSubmission rejects a lead outright.
func (sc *SubmissionController) DeleteSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := sc.submissions.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Submission deleted", nil)
}

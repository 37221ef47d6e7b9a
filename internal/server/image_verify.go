package server

import (
	"bytes"
	"image"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlinaLB/celfie-lock/api"
	"github.com/AlinaLB/celfie-lock/internal/logging"
	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
	"github.com/AlinaLB/celfie-lock/pkg/steg"
)

// VerifyImageHandler godoc
//
// @Summary Check whether an image carries a hidden message
// @Description This endpoint reports whether the supplied image contains a recoverable hidden payload, without returning its contents
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with image to verify"
// @Success 200 {object} api.VerifyImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /verify/image [post]
func VerifyImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image verify request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	imageToVerify, _, err := image.Decode(bytes.NewReader(requestBody.ImageToDecode))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageDecoder := steg.NewImageDecoder(raster.FromImage(imageToVerify), config.ImageDecodeConfig{})
	contains := imageDecoder.Verify()

	logger.With("contains_hidden_message", contains).Info("Image verification finished")

	ctx.JSON(http.StatusOK, api.VerifyImageResponse{ContainsHiddenMessage: contains})
}

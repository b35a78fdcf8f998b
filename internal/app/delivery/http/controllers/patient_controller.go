package controllers

import (
	"context"
	"errors"
	"net/http"
	"patient-record-service/internal/app/config"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/dto/requests"
	"patient-record-service/internal/pkg/dto/responses"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) Home(w http.ResponseWriter, r *http.Request) {
	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.HomeMessage)
}

func (ctrl *PatientController) About(w http.ResponseWriter, r *http.Request) {
	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.AboutMessage)
}

func (ctrl *PatientController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.HealthzMessage)
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	ctrl.Log.Info("PatientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	response, err := ctrl.PatientUsecase.FindAll(ctx)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(ctx, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	patientID, err := parsePatientID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(ctx, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) Sort(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	request := &requests.SortPatients{
		SortBy: query.Get(constvars.QueryParamSortBy),
		Order:  query.Get(constvars.QueryParamOrder),
	}
	ctrl.Log.Info("PatientController.Sort called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSortByKey, request.SortBy),
		zap.String(constvars.LoggingSortOrderKey, request.Order),
	)

	if !query.Has(constvars.QueryParamSortBy) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamRequired(constvars.QueryParamSortBy))
		return
	}

	response, err := ctrl.PatientUsecase.Sort(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(ctx, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("PatientController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreatePatient)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Create error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	patient, err := ctrl.PatientUsecase.Create(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(ctx, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, responses.PatientMutation{
		Message: constvars.CreatePatientSuccessMessage,
		Patient: *patient,
	})
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	patientID, err := parsePatientID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePatient)
	err = utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Update error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	patient, err := ctrl.PatientUsecase.Update(ctx, patientID, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(ctx, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.PatientMutation{
		Message: constvars.UpdatePatientSuccessMessage,
		Patient: *patient,
	})
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	patientID, err := parsePatientID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.PatientUsecase.Delete(ctx, patientID)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(ctx, w, err)
		return
	}

	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage)
}

func (ctrl *PatientController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func parsePatientID(r *http.Request) (int, error) {
	param := chi.URLParam(r, constvars.URLParamPatientID)
	patientID, err := utils.ParseIntParam(param)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID)
	}
	return patientID, nil
}

func (ctrl *PatientController) buildUsecaseErrorResponse(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
		return
	}

	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		err = exceptions.ErrServerProcess(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

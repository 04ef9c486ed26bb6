package cgen

const sourceTmpl = `{{banner "glue"}}

#include "ni_modelframework.h"
#include "model.h"

#include <stddef.h> /* offsetof() */

/* User-defined data types for parameters and signals */
#define rtDBL 0
#define rtINT 1

#ifdef __cplusplus
extern "C" {
#endif /* __cplusplus */

/* Model info */
const char* USER_ModelName DataSection(".NIVS.compiledmodelname") =
		{{cstr .Model.Name}};
const char* USER_Builder DataSection(".NIVS.builder") =
		{{cstr .Model.Builder}};


/* Model baserate */
double USER_BaseRate = {{cfloat .Model.BaseRate}};

/* Model task configuration */
NI_Task rtTaskAttribs DataSection(".NIVS.tasklist") = {0, {{cfloat .Model.BaseRate}}, 0, 0};


/* Parameters */
int32_t ParameterSize DataSection(".NIVS.paramlistsize") = {{.Params.Len}};
{{- if eq .Params.Len 0}}
NI_Parameter rtParamAttribs[1] DataSection(".NIVS.paramlist");
int32_t ParamDimList[1] DataSection(".NIVS.paramdimlist");
Parameters initParams DataSection(".NIVS.defaultparams");
ParamSizeWidth Parameters_sizes[1] DataSection(".NIVS.defaultparamsizes");
{{- else}}
NI_Parameter rtParamAttribs[] DataSection(".NIVS.paramlist") = {
{{- range .Params.Tables.Descriptors}}
	{0, {{modelPath .HostPath}}, offsetof(Parameters, {{.Member}}), {{.Type.TagName}}, {{.Count}}, {{.Dimensionality}}, {{.DimIndex}}, 0},
{{- end}}
};
int32_t ParamDimList[] DataSection(".NIVS.paramdimlist") = {
{{- range .Params.Tables.Dims}}
	{{dimRow .}}
{{- end}}
};
/* Set default parameter values here */
Parameters initParams DataSection(".NIVS.defaultparams");
ParamSizeWidth Parameters_sizes[] DataSection(".NIVS.defaultparamsizes") = {
	{sizeof(Parameters), 0, 0},
{{- range .Params.Tables.Sizes}}
	{sizeof({{.Type.CType}}), {{.Count}}, {{.Type.TagName}}}, /* {{.Member}} */
{{- end}}
};
{{- end}}


/* Signals */
Signals rtSignal;

int32_t SignalSize DataSection(".NIVS.siglistsize") = {{.Signals.Len}};
{{- if eq .Signals.Len 0}}
NI_Signal rtSignalAttribs[1] DataSection(".NIVS.siglist");
int32_t SigDimList[1] DataSection(".NIVS.sigdimlist");
{{- else}}
NI_Signal rtSignalAttribs[] DataSection(".NIVS.siglist") = {
{{- range .Signals.Tables.Descriptors}}
	{0, {{modelPath .HostPath}}, 0, {{cstr .Description}}, 0, 0, {{.Type.TagName}}, {{.Count}}, {{.Dimensionality}}, {{.DimIndex}}, 0},
{{- end}}
};
int32_t SigDimList[] DataSection(".NIVS.sigdimlist") = {
{{- range .Signals.Tables.Dims}}
	{{dimRow .}}
{{- end}}
};
{{- end}}


/* Inports and outports */
int32_t InportSize = {{.Inports.Len}};
int32_t OutportSize = {{.Outports.Len}};
int32_t ExtIOSize DataSection(".NIVS.extlistsize") = {{add .Inports.Len .Outports.Len}};
NI_ExternalIO rtIOAttribs[] DataSection(".NIVS.extlist") = {
{{ioRows .Inports "Inports"}}{{ioRows .Outports "Outports"}}	/* Terminate list */
	{-1, NULL, 0, 0, 0, 0, 0},
};


int32_t USER_SetValueByDataType(void* ptr, int32_t idx, double value, int32_t type) {
	switch (type) {
		case rtDBL:
			((double*)ptr)[idx] = (double)value;
			return NI_OK;
		case rtINT:
			((int32_t*)ptr)[idx] = (int32_t)value;
			return NI_OK;
	}

	return NI_ERROR;
}

double USER_GetValueByDataType(void* ptr, int32_t idx, int32_t type) {
	switch (type) {
		case rtDBL:
			return ((double*)ptr)[idx];
		case rtINT:
			return (double)(((int32_t*)ptr)[idx]);
	}

	/* Return NaN on error */
	static const uint64_t nan = ~(uint64_t)0;
	return *(const double*)&nan;
}

int32_t USER_Initialize(void) {
{{- if .Signals.Len}}
	/* Populate pointers to signal values */
{{- range .Signals.Tables.Bindings}}
	rtSignalAttribs[{{.Index}}].addr = (uintptr_t)&{{.Lvalue "rtSignal"}};
{{- end}}
{{end}}
	return {{.Model.Name}}_Initialize();
}

int32_t USER_ModelStart(void) {
	return {{.Model.Name}}_Start();
}

int32_t USER_TakeOneStep(double* inData, double* outData, double timestamp) {
	const Inports* inports = (const Inports*)inData;
	Outports* outports = (Outports*)outData;
	return {{.Model.Name}}_Step(inports, outports, timestamp);
}

int32_t USER_ModelFinalize(void) {
	return {{.Model.Name}}_Finalize();
}

#ifdef __cplusplus
} /* extern "C" */
#endif /* __cplusplus */
`

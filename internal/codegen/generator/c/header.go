package cgen

const headerTmpl = `{{banner "types"}}

#ifndef {{guard}}
#define {{guard}}

#include <stdint.h>

/* Parameters structure */
{{structDef .Params}}

#ifdef __cplusplus
extern "C" {
#endif /* __cplusplus */

/* Parameters are defined by NI model interface code */
/* Use readParam to access parameters */
extern Parameters rtParameter[2];
extern int32_t READSIDE;
#define readParam rtParameter[READSIDE]

#ifdef __cplusplus
} /* extern "C" */
#endif /* __cplusplus */

/* Inports structure */
{{structDef .Inports}}

/* Outports structure */
{{structDef .Outports}}

/* Signals structure */
{{structDef .Signals}}

#ifdef __cplusplus
extern "C" {
#endif /* __cplusplus */

/* Model signals */
extern Signals rtSignal;

/* Your model code should define these functions. Return NI_OK or NI_ERROR. */
int32_t {{.Model.Name}}_Initialize(void);
int32_t {{.Model.Name}}_Start(void);
int32_t {{.Model.Name}}_Step(const Inports* inports, Outports* outports, double timestamp);
int32_t {{.Model.Name}}_Finalize(void);

#ifdef __cplusplus
} /* extern "C" */
#endif /* __cplusplus */

#endif /* {{guard}} */
`

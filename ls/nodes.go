package ls

const (
	NodeStart             = "inicio"
	NodeArguments         = "argumentos"
	NodeDynamicity        = "dinamicidad"
	NodeDynamicityConfirm = "dinamicidad_confirm"
	NodeSpecialCase       = "caso_especial_check"
	NodePredicate         = "predicado"

	NodeFilterSe                 = "pregunta_filtro_se"
	NodeExperiencerPred          = "pred_dativo_experimentante"
	NodeExperiencerAnticausative = "anticausativa_dativo_experimentante"
	NodeBodyPart                 = "pregunta_doler_gustar"
	NodeDativePattern            = "pregunta_doler_gustar_2"
	NodeDativePred               = "pred_doler_gustar"
	NodeWeatherHacer             = "pregunta_hacer_meteo"
	NodeWeatherPred              = "pred_hacer_meteo"
	NodeImpersonal               = "caso_impersonal"
	NodeImpersonalIr             = "impersonal_ir"
	NodeImpersonalBastar         = "impersonal_bastar"
	NodeLocativeDative           = "pregunta_locativo_dativo"
	NodeLocativeDativeBuild      = "generar_locativo_dativo"

	NodeIndirectObject  = "caso_oi"
	NodeTeachRAC        = "pregunta_ensenar_rac"
	NodeDictionRA       = "pregunta_diccion_ra"
	NodeDictionRABuild  = "generar_diccion_ra"
	NodeIndirectType    = "verificar_tipo_oi"
	NodeTransfer        = "pregunta_transferencia"
	NodeDiction         = "pregunta_diccion"
	NodeDictionBuild    = "generar_diccion"
	NodeOtherIndirect   = "otros_verbos_oi"
	NodeTeach           = "pregunta_ensenar"

	NodeStative                = "caso_estado"
	NodeWeatherState           = "estado_climatico"
	NodeEssential              = "pregunta_ser_esencial"
	NodeEssentialPred          = "estado_ser"
	NodeSensationState         = "pregunta_sensacion_estado"
	NodeSensationStatePred     = "estado_sensacion"
	NodeSensationObject        = "pregunta_sensacion_od"
	NodeCausativeSensation     = "caso_causativo_sensacion_check"
	NodeCausativeSensationPred = "causativo_sensacion"

	NodeLocative                = "caso_locativo"
	NodeLocativeForm            = "obtener_locativo"
	NodeLocativeProcess         = "procesar_locativo"
	NodeHaveLocative            = "pregunta_tener_locativo"
	NodeKinLocative             = "pregunta_parentesco_loc"
	NodeLocativeResult          = "pregunta_resultado_loc"
	NodePlaceKind               = "pregunta_lugar_tipo"
	NodeMotion                  = "generar_movimiento"
	NodeLocativeResultCausative = "pregunta_resultado_loc_caus"
	NodePlaceKindCausative      = "pregunta_lugar_tipo_caus"
	NodeMotionCausative         = "generar_movimiento_caus"

	NodeMind                 = "info_mente"
	NodeRegimen              = "complemento_regimen"
	NodeRegimenForm          = "obtener_complemento_regimen"
	NodeSpecialPredicates    = "predicados_especiales_check"
	NodeImpersonalPerception = "percepcion_impersonal"
	NodeInterlocutor         = "pregunta_interlocutor"
	NodeInterlocutorForm     = "obtener_interlocutor"
	NodeReciprocalIntent     = "pregunta_intencionalidad_reciproca"
	NodePossessionPart       = "pregunta_posesion_parte"
	NodePossessionKin        = "pregunta_posesion_parentesco"

	NodeBasic                = "generar_basico"
	NodePerception           = "pregunta_percepcion"
	NodeSense                = "seleccionar_sentido"
	NodeBasicFinal           = "generar_basico_final"
	NodeActiveAccomplishment = "realizacion_activa"
	NodeCreation             = "ra_creacion"
	NodeConsumption          = "ra_consumo"
	NodeConsumptionCausative = "ra_consumo_caus_2"
	NodeDisplacement         = "ra_desplazamiento"
	NodeDisplacementPlace    = "ra_despl_lugar"
	NodeDisplacementBuild    = "ra_despl_generar"
	NodeOther                = "ra_otros"
	NodeOtherRegimen         = "ra_otros_regimen"
	NodeOtherRegimenForm     = "ra_otros_regimen_form"
	NodeOtherNoRegimen       = "ra_otros_sin_regimen"
	NodeOtherRegimenNC       = "ra_otros_regimen_nc"
	NodeOtherRegimenNCForm   = "ra_otros_regimen_nc_form"
	NodeOtherNoRegimenNC     = "ra_otros_sin_regimen_nc"
	NodeCausativeActivity    = "actividad_causativa"

	NodeIntentionality    = "intencionalidad"
	NodeAnticausative     = "anticausativa"
	NodeResult            = "resultado"
	NodeAskOperators      = "preguntar_operadores"
	NodeSelectPredicates  = "seleccionar_predicados"
	NodeCorrectPredicates = "corregir_predicados"
	NodeSelectOperators   = "seleccionar_operadores"
	NodeFinal             = "final"
	NodeError             = "error"
)

var Nodes = []string{
	NodeStart, NodeArguments, NodeDynamicity, NodeDynamicityConfirm, NodeSpecialCase, NodePredicate,

	NodeFilterSe, NodeExperiencerPred, NodeExperiencerAnticausative, NodeBodyPart, NodeDativePattern,
	NodeDativePred, NodeWeatherHacer, NodeWeatherPred, NodeImpersonal, NodeImpersonalIr,
	NodeImpersonalBastar, NodeLocativeDative, NodeLocativeDativeBuild,

	NodeIndirectObject, NodeTeachRAC, NodeDictionRA, NodeDictionRABuild, NodeIndirectType,
	NodeTransfer, NodeDiction, NodeDictionBuild, NodeOtherIndirect, NodeTeach,

	NodeStative, NodeWeatherState, NodeEssential, NodeEssentialPred, NodeSensationState,
	NodeSensationStatePred, NodeSensationObject, NodeCausativeSensation, NodeCausativeSensationPred,

	NodeLocative, NodeLocativeForm, NodeLocativeProcess, NodeHaveLocative, NodeKinLocative,
	NodeLocativeResult, NodePlaceKind, NodeMotion, NodeLocativeResultCausative,
	NodePlaceKindCausative, NodeMotionCausative,

	NodeMind, NodeRegimen, NodeRegimenForm, NodeSpecialPredicates, NodeImpersonalPerception,
	NodeInterlocutor, NodeInterlocutorForm, NodeReciprocalIntent, NodePossessionPart, NodePossessionKin,

	NodeBasic, NodePerception, NodeSense, NodeBasicFinal, NodeActiveAccomplishment, NodeCreation,
	NodeConsumption, NodeConsumptionCausative, NodeDisplacement, NodeDisplacementPlace,
	NodeDisplacementBuild, NodeOther, NodeOtherRegimen, NodeOtherRegimenForm, NodeOtherNoRegimen,
	NodeOtherRegimenNC, NodeOtherRegimenNCForm, NodeOtherNoRegimenNC, NodeCausativeActivity,

	NodeIntentionality, NodeAnticausative, NodeResult, NodeAskOperators, NodeSelectPredicates,
	NodeCorrectPredicates, NodeSelectOperators, NodeFinal, NodeError,
}

// Form field names.
const (
	FieldAkt          = "aktionsart"
	FieldClause       = "clausula"
	FieldSubject      = "sujeto"
	FieldObject       = "cd"
	FieldIndirect     = "ci"
	AffixSuffix       = "_afijo"
	FieldPredicate    = "predicado"
	FieldPredType     = "tipo"
	FieldPlace        = "lugar"
	FieldInfinitive   = "infinitivo"
	FieldRegimen      = "regimen"
	FieldPreposition  = "preposicion"
	FieldFood         = "alimento"
	FieldResultClause = "resultado"
)

// Predicate types of the predicado form.
const (
	PredVerb      = "verbo"
	PredAttribute = "adjetivo"
)

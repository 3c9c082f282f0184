package fabrication

// Status vocabularies per entity family.
var (
	itemStatuses  = []string{"draft", "approved", "under_review", "verified", "validated"}
	testStatuses  = []string{"planned", "ready", "in_progress", "completed", "passed", "failed"}
	issueStatuses = []string{"open", "in_progress", "testing", "review", "resolved", "closed"}
	partStates    = []string{"in_work", "released", "production", "obsolete"}
	ecnStatuses   = []string{"draft", "review", "approved", "released", "implemented", "cancelled"}
)

var (
	priorities          = []string{"critical", "high", "medium", "low"}
	verificationMethods = []string{"flight_test", "ground_test", "simulation", "analysis", "inspection"}
	safetyLevels        = []string{"DAL-A", "DAL-B", "DAL-C", "DAL-D", "DAL-E"}
	certificationBases  = []string{"FAR-25", "FAR-23", "DO-178C", "DO-254", "ARP4754A"}
	subsystems          = []string{
		"Avionics", "Propulsion", "Flight Control", "Landing Gear", "Environmental",
		"Fuel System", "Electrical", "Hydraulic", "Navigation", "Communication",
	}
	issueLabels = []string{
		"flight-safety", "certification", "flight-test", "ground-test",
		"FAA", "DO-178C", "airworthiness", "performance",
	}
	bomUnits = []string{"EA", "LB", "FT", "IN"}
)

// Aerospace requirement statements for the unseeded generator. Entries past
// the catalogue fall back to a templated generic requirement.
var aeroRequirements = []string{
	"Flight Control System shall maintain aircraft stability during all flight phases",
	"Avionics Navigation System shall provide GPS accuracy within 3 meters CEP",
	"Engine Control Unit shall monitor turbine temperature and limit to 1200°C maximum",
	"Landing Gear System shall deploy and retract within 15 seconds",
	"Environmental Control System shall maintain cabin pressure at 8000 ft equivalent",
	"Flight Management System shall calculate optimal flight path for fuel efficiency",
	"Weather Radar shall detect precipitation up to 160 nautical miles",
	"Autopilot System shall maintain altitude within ±100 feet during cruise",
	"Communication System shall provide VHF radio coverage on 118-137 MHz band",
	"Hydraulic System shall operate at 3000 PSI nominal pressure",
	"Fuel Management System shall monitor fuel quantity with ±2% accuracy",
	"Ice Protection System shall prevent ice accumulation on critical surfaces",
	"Emergency Oxygen System shall provide 15 minutes supply at 25000 ft",
	"Fire Detection System shall alert crew within 10 seconds of detection",
	"Electrical Power System shall provide 28V DC and 115V AC power",
	"Pitot-Static System shall measure airspeed with ±3 knot accuracy",
	"Thrust Reverser System shall reduce landing roll by minimum 30%",
	"Anti-Skid Braking System shall prevent wheel lockup during landing",
	"Cabin Lighting System shall provide emergency egress illumination",
	"Flight Data Recorder shall capture 25+ flight parameters continuously",
}

var aeroTestCases = []string{
	"Flight Control Authority Test - Verify control surface deflection limits",
	"Engine Start Sequence Test - Validate turbine startup parameters",
	"Navigation Accuracy Test - Verify GPS/INS position accuracy",
	"Hydraulic Pressure Test - Validate system pressure under load",
	"Cabin Pressurization Test - Verify pressure regulation at altitude",
	"Landing Gear Deployment Test - Validate extension/retraction timing",
	"Autopilot Engagement Test - Verify automatic flight control activation",
	"Weather Radar Detection Test - Validate precipitation detection range",
	"Emergency Oxygen Flow Test - Verify oxygen supply duration",
	"Fire Detection Response Test - Validate alert timing and accuracy",
	"Pitot-Static Calibration Test - Verify airspeed indication accuracy",
	"Anti-Ice System Test - Validate ice protection effectiveness",
	"VHF Radio Communication Test - Verify transmission quality",
	"Fuel Quantity Indication Test - Validate fuel measurement accuracy",
	"Thrust Reverser Operation Test - Verify deployment and stowage",
	"Electrical Load Test - Validate power distribution under load",
	"Flight Data Recording Test - Verify parameter capture accuracy",
	"Brake Anti-Skid Test - Validate wheel slip prevention",
	"Emergency Lighting Test - Verify egress path illumination",
	"Environmental Control Test - Validate temperature regulation",
}

var aeroIssues = []string{
	"Engine vibration exceeds limits during flight test FT-001",
	"Hydraulic leak detected in landing gear actuator assembly",
	"GPS navigation accuracy degraded in mountainous terrain",
	"Cabin pressurization system fails to maintain 8000 ft equivalent",
	"Flight control surface flutter observed at Mach 0.78",
	"Fuel flow sensor reading inconsistent with actual consumption",
	"Weather radar display shows false precipitation echoes",
	"Autopilot disengages unexpectedly during approach phase",
	"Anti-ice system draws excessive electrical current",
	"Communication static interference on VHF frequency 124.5",
	"Thrust reverser deployment delayed by 2.3 seconds",
	"Emergency oxygen mask fails to deploy in cabin test",
	"Fire detection system false alarm in engine bay",
	"Pitot tube heating element shows intermittent failure",
	"Landing gear retraction sequence timing out of specification",
	"Flight data recorder missing altitude parameter data",
	"Environmental control temperature regulation unstable",
	"Electrical bus voltage fluctuation during high load conditions",
	"Brake anti-skid system activating prematurely on dry runway",
	"Emergency lighting circuit breaker trips during system test",
}

type partTemplate struct {
	name        string
	description string
}

var aeroParts = []partTemplate{
	{"Engine Turbine Blade Assembly", "High-temperature nickel superalloy turbine blade with cooling passages and thermal barrier coating"},
	{"Flight Control Actuator", "Electro-hydraulic actuator for primary flight control surface with redundant position feedback"},
	{"Avionics Display Unit", "Multi-function display unit with LED backlighting and touch screen interface for cockpit integration"},
	{"Landing Gear Strut Assembly", "Oleo-pneumatic shock strut with integrated position sensors and anti-shimmy damper"},
	{"Fuel Pump Housing", "Titanium alloy centrifugal fuel pump housing with integrated pressure relief valve"},
	{"Pitot-Static Probe", "Heated pitot-static probe with ice detection capability and drain holes for moisture removal"},
	{"Navigation Antenna", "GPS/GLONASS L1/L2 navigation antenna with lightning protection and EMI shielding"},
	{"Hydraulic Reservoir", "Pressurized hydraulic fluid reservoir with level sensors and temperature monitoring"},
	{"Engine Control Module", "Full Authority Digital Engine Control (FADEC) with dual-channel redundancy"},
	{"Communication Radio", "VHF/UHF transceiver with 25 kHz channel spacing and digital signal processing"},
	{"Oxygen Regulator", "Continuous flow oxygen regulator with altitude compensating aneroid for crew oxygen system"},
	{"Fire Extinguisher Bottle", "Halon 1301 fire extinguisher bottle with squib-operated discharge valve"},
	{"Weather Radar Antenna", "X-band phased array antenna for weather detection with tilt and azimuth control"},
	{"Cabin Pressure Controller", "Digital cabin pressure controller with backup analog control and altitude scheduling"},
	{"Anti-Ice Heating Element", "Electrothermal heating mat for wing leading edge ice protection system"},
	{"Flight Data Recorder", "Crash-survivable flight data recorder with 25-hour minimum recording capability"},
	{"Brake Control Valve", "Anti-skid brake control valve with pressure modulation and wheel speed input"},
	{"Emergency Lighting Battery", "NiCd battery pack for emergency lighting with 10-minute minimum discharge time"},
	{"Thrust Reverser Actuator", "Pneumatic thrust reverser actuator with position indication and safety locks"},
	{"Environmental Control Unit", "Air cycle machine for cabin air conditioning with heat exchanger and turbine"},
}

type changeTemplate struct {
	title       string
	description string
}

var aeroChangeNotices = []changeTemplate{
	{"Flight Control Actuator Material Upgrade", "Change actuator housing material from aluminum to titanium alloy for improved corrosion resistance and weight reduction. Required for service bulletin compliance."},
	{"Engine Control Software Update v2.1", "Update FADEC software to address fuel efficiency optimization and emissions compliance with latest EPA standards. Includes enhanced diagnostics."},
	{"Landing Gear Position Sensor Replacement", "Replace magnetic proximity sensors with LVDT position sensors for improved accuracy and reliability in harsh operating conditions."},
	{"Cabin Pressure Relief Valve Modification", "Modify pressure relief valve spring rate to prevent over-pressurization events observed during high altitude operations."},
	{"Navigation Display Brightness Enhancement", "Increase display brightness capability for improved visibility in high ambient light conditions. Addresses pilot feedback from field operations."},
	{"Hydraulic Filter Element Change", "Change from paper-based to synthetic filter elements to extend service intervals and improve contamination control."},
	{"Weather Radar Antenna Radome Update", "Update radome material to improved composite with better lightning strike protection and reduced electromagnetic interference."},
}

var aeroEmailSubjects = []string{
	"Flight Test Report FT-2024-015 - Engine Performance Results",
	"FAA Certification Update - DO-178C Software Review Status",
	"Ground Test Schedule - Hydraulic System Integration Testing",
	"Engineering Review Meeting - Landing Gear Modification ECN-2024-003",
	"Supplier Quality Alert - Actuator Component Non-Conformance",
	"Flight Operations Feedback - Autopilot System Performance",
	"Certification Milestone Update - Avionics System Verification",
	"Design Review Action Items - Environmental Control System",
	"Test Data Analysis - Weather Radar Performance Validation",
	"Regulatory Compliance Notice - New FAA Service Bulletin",
}

var aeroEmailBodies = []string{
	"Please review the attached technical documentation and provide feedback by COB Friday. This relates to our ongoing certification activities.",
	"The flight test results are now available for review. Please coordinate with the test pilot for any follow-up questions regarding system performance.",
	"Engineering team meeting scheduled to discuss technical findings. Your expertise in this area would be valuable for the discussion.",
	"Regulatory compliance update requires immediate attention. Please review the attached FAA correspondence and prepare response.",
	"System integration testing has identified several items requiring engineering review. Please prioritize based on flight safety impact.",
}

var emailDomains = []string{
	"aerocorp.com", "flighttest.gov", "aviationeng.com", "aerospace-systems.com",
}

var emailAttachments = []string{
	"FlightTestReport.pdf", "TechnicalSpecification.docx", "TestData.xlsx",
	"CertificationPlan.pdf", "EngineeringDrawing.dwg", "ComplianceMatrix.xlsx",
}

var aeroCalendarSubjects = []string{
	"Flight Test Coordination Meeting - Weekly Status Review",
	"Engineering Design Review - Avionics System Architecture",
	"Certification Planning Session - FAA DER Meeting",
	"Ground Test Witness - Hydraulic System Pressure Testing",
	"Technical Presentation - Propulsion System Performance",
	"Project Milestone Review - Phase 2 Flight Testing",
	"Supplier Audit - Avionics Component Manufacturing",
	"Safety Review Board - System Hazard Analysis",
	"Flight Operations Briefing - New Procedures Training",
	"Regulatory Update Webinar - Latest FAA Airworthiness Directives",
}

var aeroMeetingBodies = []string{
	"Please join us for the weekly engineering review meeting. We'll cover recent test results and upcoming milestones. Your input on system performance would be valuable.",
	"Design review meeting to discuss technical specifications and certification requirements. Please bring your latest analysis results.",
	"Coordination meeting with FAA representatives to review certification progress. All engineering leads should attend.",
	"Ground test witnessing session. Safety briefing starts 30 minutes prior to test commencement.",
	"Technical presentation on system performance metrics and compliance verification results.",
}

var aeroTeamMembers = []string{
	"Dr. Sarah Mitchell (Flight Test Engineer)",
	"James Rodriguez (Avionics Systems Manager)",
	"Lisa Chen (Certification Engineer)",
	"Michael Thompson (Propulsion Engineer)",
	"Anna Kowalski (Flight Test Pilot)",
	"David Park (Systems Integration Lead)",
	"Jennifer Williams (Quality Assurance Manager)",
	"Robert Johnson (Chief Engineer)",
	"Maria Garcia (Regulatory Affairs)",
	"Thomas Anderson (Project Manager)",
}

// Seeded-run catalogues, GOES-R flavored to match requirements extracted
// from mission documents.

type activityTemplate struct {
	summary     string
	description string
}

var seededIssueTemplates = []activityTemplate{
	{"Implement requirement %s", "Implementation task for requirement %s - %s"},
	{"Test requirement %s", "Create and execute test cases for requirement %s - %s"},
	{"Review requirement %s", "Technical review needed for requirement %s - %s"},
	{"Validate requirement %s", "Validation activity for requirement %s - %s"},
	{"Document requirement %s", "Create technical documentation for requirement %s - %s"},
}

var seededIssueTypes = []string{"task", "story", "defect", "enhancement"}

var goesParts = []partTemplate{
	{"ABI Primary Mirror Assembly", "Primary mirror assembly for Advanced Baseline Imager with protected silver coating"},
	{"GLM Optical Telescope Assembly", "Compact optical telescope for Geostationary Lightning Mapper instrument"},
	{"SUVI CCD Detector Assembly", "Back-illuminated CCD detector for Solar Ultraviolet Imager"},
	{"EXIS Photodiode Array", "Silicon photodiode array for Extreme Ultraviolet and X-ray Irradiance Sensors"},
	{"MAG Fluxgate Sensor", "Triaxial fluxgate magnetometer sensor head with temperature compensation"},
	{"Spacecraft Solar Panel Assembly", "Triple-junction GaAs solar cell assembly with deployable substrate"},
	{"Propulsion Thruster Assembly", "Bipropellant thruster for station-keeping and attitude control"},
	{"S-Band Communication Antenna", "High-gain antenna for telemetry, tracking, and command communications"},
	{"Data Processing Unit", "Solid-state data processor with radiation-hardened components"},
	{"Battery Pack Assembly", "Nickel-hydrogen battery pack for eclipse power management"},
}

var goesChangeNotices = []changeTemplate{
	{"ABI Optical Filter Specification Update", "Update optical filter specifications for ABI visible channels to improve out-of-band rejection"},
	{"GLM Detector Bias Voltage Modification", "Modify GLM CCD detector bias voltages to reduce dark current and improve sensitivity"},
	{"SUVI Thermal Control Enhancement", "Enhance SUVI thermal control system to maintain detector temperature stability"},
	{"Spacecraft Antenna Pointing Adjustment", "Adjust high-gain antenna pointing mechanism to improve Earth coverage"},
}

var seededEmailTemplates = []string{
	"GOES-R Requirement Review - %s Status Update",
	"Action Required: %s Verification Planning",
	"Weekly Status: %s Implementation Progress",
	"Certification Update: %s Test Results Available",
	"Design Review: %s Technical Assessment Complete",
}

var seededEmailDomains = []string{"nasa.gov", "noaa.gov", "goes-r.gov", "contractor.com"}

var seededMeetingTemplates = []string{
	"GOES-R Requirements Review Board - Weekly Meeting",
	"Instrument Calibration Working Group - %s Discussion",
	"System Integration Team Meeting - %s Status",
	"Test Readiness Review - %s Verification",
	"Design Review Meeting - %s Technical Deep Dive",
}

var seededTeamMembers = []string{
	"Dr. Sarah Mitchell (Mission Systems Engineer)",
	"James Rodriguez (Instrument Lead)",
	"Lisa Chen (Test Engineer)",
	"Michael Park (Systems Integration)",
	"Anna Kowalski (Quality Assurance)",
	"David Thompson (Project Manager)",
}

var testFacilities = []string{
	"Flight Test Center", "Ground Test Lab", "Iron Bird Rig", "Simulator",
}

var seededTestFacilities = []string{
	"Ground Test Lab", "Integration Facility", "Flight Test", "Simulation Lab",
}

var testPhases = []string{"development", "qualification", "certification", "production"}

var riskLevels = []string{"low", "medium", "high", "critical"}

package math

// =============================================================================
// Coefficient tables
//
// Tables are stored constant term first, in the layout read by the poly
// package. Single precision tables are fitted for float32 rounding and are
// shorter; double precision tables reach about 1 ulp.
// =============================================================================

// exp(t) on |t| <= ln2/2: diagonal Pade approximant, num[6]/den[6] for
// float64 and num[3]/den[3] for float32.
var (
	expP_f32 = []float32{
		1.0, 0.5, 0.10000000149011612, 0.008333333767950535,
		-0.5, 0.10000000149011612, -0.008333333767950535,
	}
	expP_f64 = []float64{
		1.0, 0.5, 0.11363636363636363, 0.015151515151515152,
		0.0012626262626262627, 6.313131313131313e-05, 1.503126503126503e-06,
		-0.5, 0.11363636363636363, -0.015151515151515152,
		0.0012626262626262627, -6.313131313131313e-05, 1.503126503126503e-06,
	}
)

// expm1(t) = t * R(t) on |t| <= ln2/2.
var (
	expm1P_f32 = []float32{
		1.0, 0.1666666716337204, 0.03333333507180214, 0.0027777778450399637,
		-0.3333333432674408, 0.03333333507180214,
	}
	expm1P_f64 = []float64{
		1.0, 0.045454545454545456, 0.030303030303030304, 0.0012626262626262627,
		0.00012626262626262626, 3.006253006253006e-06,
		-0.45454545454545453, 0.09090909090909091, -0.010101010101010102,
		0.0006313131313131314, -1.8037518037518038e-05,
	}
)

// log(y) = 2s * A(s^2) with s = (y-1)/(y+1), y in [2/3, 4/3).
var (
	logP_f32 = []float32{
		1.0, -0.380952388048172, -0.03809523954987526, -0.7142857313156128,
	}
	logP_f64 = []float64{
		1.0, -1.7843137254901962, 0.9764705882352941, -0.16664511958629605,
		0.00427911957323722,
		-2.1176470588235294, 1.4823529411764707, -0.38009049773755654,
		0.025915261209378856,
	}
)

// sin(r) = r + r^3 * S(r^2) and cos(r) = 1 - r^2/2 + r^4 * C(r^2) on
// |r| <= pi/4. The leading terms are the Taylor coefficients -1/6 and 1/24.
var (
	sinP_f32 = []float32{-0.166666641831398, 0.008332747966051102, -0.00019587890710681677}
	cosP_f32 = []float32{0.0416666641831398, -0.001388830249197781, 2.454794230288826e-05}

	sinP_f64 = []float64{
		-0.16666666666666666, 0.008333333333330948, -0.00019841269836758574,
		2.755731610255244e-06, -2.5051131845003624e-08, 1.5918129294866608e-10,
	}
	cosP_f64 = []float64{
		0.041666666666666664, -0.0013888888888887398, 2.480158729876569e-05,
		-2.7557317271729793e-07, 2.08761462684032e-09, -1.1382632425521717e-11,
	}
)

// atan(t) = t + t^3 * A(t^2) on |t| <= tan(pi/8).
var (
	atanP_f32 = []float32{-0.3333328664302826, 0.19991238415241241, -0.14024142920970917, 0.08520492166280746}
	atanP_f64 = []float64{
		-0.3333333333333325, 0.19999999999898407, -0.1428571426609662,
		0.11111109636534361, -0.09090852557176049, 0.0769105515839315,
		-0.06649613695291669, 0.05736332165907643, -0.04483334622272886,
		0.02275052699336167,
	}
)

// erf(x) = x * E(x^2) on |x| <= 1. E(0) is 2/sqrt(pi).
var (
	erfP_f32 = []float32{
		1.1283791065216064, -0.37612342834472656, 0.11280316859483719,
		-0.026715055108070374, 0.004921761807054281, -0.0005648059886880219,
	}
	erfP_f64 = []float64{
		1.1283791670955126, -0.37612638903183543, 0.11283791670945006,
		-0.02686617064323777, 0.0052239776071164225, -0.0008548325975389692,
		0.00012055294904839707, -1.492473690741966e-05, 1.6447424703317362e-06,
		-1.6208483801871705e-07, 1.3720064546777686e-08, -7.795898827002142e-10,
	}
)

// erfc(x) = exp(-x^2)/x * G(1/x) for x > 1. G(0) is 1/sqrt(pi). float32 uses
// one rational on [1, 11]; float64 splits at 2 and 4.
var (
	erfcP_f32 = []float32{
		0.5641797184944153, 2.1417906284332275, 4.128493309020996, 3.515249252319336,
		0.002249043434858322,
		3.7956206798553467, 7.826354026794434, 8.056722640991211, 3.5316858291625977,
	}
	erfcP1_f64 = []float64{
		0.5641823701530909, 5.434591670500948, 24.442489142443925, 62.96113992380958,
		93.32484594021263, 68.17032241822565, 1.9268255652341354e-06,
		9.632186643550968, 43.828530772933064, 116.36316591745451,
		186.89415601012274, 170.24670378789907, 68.17034625531153,
	}
	erfcP2_f64 = []float64{
		0.5641894398297035, 4.138417177508959, 15.79883341189091, 35.423898500657714,
		46.57657011434817, 29.562056829013805, 0.0007085128261847001,
		7.335141939620844, 28.502948113911135, 66.45154996509471,
		96.0862212869006, 79.91947656028056, 29.567493247683625,
	}
	erfcP3_f64 = []float64{
		0.5641895835448497, 1.815523067994389, 6.4579402919318705, 9.767279924052154,
		11.619399223202288, 5.312960745240641, 0.15986956866235558,
		3.217930852546159, 11.946401185094606, 18.92101664827024,
		25.818090701577145, 16.463339320839275, 6.116089753307715,
	}
)

// =============================================================================
// Reduction constants
// =============================================================================

// Cody-Waite splits. The leading part of each split has enough trailing
// zero bits that multiplying it by the reduction integer is exact.
var (
	expLn2Hi_f32 float32 = 0.693359375
	expLn2Lo_f32 float32 = -2.12194440e-4
	expLn2Hi_f64 float64 = 6.93147180369123816490e-01
	expLn2Lo_f64 float64 = 1.90821492927058770002e-10

	exp10Lg2Hi_f32 float32 = 0.30102539062
	exp10Lg2Lo_f32 float32 = 4.605038981e-06
	exp10Lg2Hi_f64 float64 = 0.30102999566383914498
	exp10Lg2Lo_f64 float64 = 1.4205023227266099418e-13

	pio2_1_f32 float32 = 1.5703125
	pio2_2_f32 float32 = 4.837512969970703125e-4
	pio2_3_f32 float32 = 7.54978995489188216e-8
	pio2_1_f64 float64 = 1.57079632673412561417e+00
	pio2_2_f64 float64 = 6.07710050630396597660e-11
	pio2_3_f64 float64 = 2.02226624871116645580e-21
)

// Range limits.
var (
	// exp(x) overflows above ln(MaxValue) and leaves the normal range
	// below ln(SmallestNormal).
	expOverflow_f32  float32 = 88.72283905206835
	expUnderflow_f32 float32 = -87.33654475055310
	expOverflow_f64  float64 = 709.782712893384
	expUnderflow_f64 float64 = -708.3964185322641

	exp10Overflow_f32  float32 = 38.53183944498959
	exp10Underflow_f32 float32 = -37.92977945366163
	exp10Overflow_f64  float64 = 308.25471555991675
	exp10Underflow_f64 float64 = -307.6526555685888

	// Above this |x| the exp(-|x|) half of sinh and cosh is below one ulp
	// and tanh rounds to 1.
	hypLarge_f32 float32 = 9
	hypLarge_f64 float64 = 22

	// erfc(x) is zero beyond these.
	erfcZero_f32 float32 = 10.05
	erfcZero_f64 float64 = 26.55

	// Fraction bits kept in the high part of x when forming exp(-x^2).
	erfcSplitBits_f32 = 11
	erfcSplitBits_f64 = 25
)

const (
	ln2     = 0.693147180559945309417232121458176568
	log2e   = 1.44269504088896340735992468100189214
	log10e  = 0.434294481903251827651128918916605082
	ln10    = 2.30258509299404568401799145468436421
	log2_10 = 3.32192809488736234787031942948939018
	pi      = 3.14159265358979323846264338327950288
	twoByPi = 0.636619772367581343075535053490057448
	tanPi8  = 0.414213562373095048801688724209698079
)

package extraction

// defaultCorpus is the built-in background corpus used for inverse document
// frequency. It is deliberately generic resume/job-posting English: terms
// common across these documents ("team", "experience", "work") earn a low
// idf even when frequent in a target job description, while specific
// technologies and domain terms stay rare and score high. Callers with a
// better reference set can supply their own via NewExtractorWithCorpus.
var defaultCorpus = []string{
	`We are looking for a motivated candidate to join our team. The ideal
	candidate has strong experience working in a fast paced environment and
	a proven track record of delivering results. You will work closely with
	team members across the company to meet business goals.`,

	`Responsibilities include working with stakeholders, attending team
	meetings, and contributing to projects. The role requires good
	communication skills, attention to detail, and the ability to manage
	time effectively. Years of experience in a similar role preferred.`,

	`Experienced professional with a strong background in delivering
	projects on time. Skilled at working with people across teams and
	departments. Responsible for day to day operations and reporting to
	senior management. Seeking new opportunities for growth.`,

	`Summary of qualifications: proven ability to work independently and as
	part of a team. Strong work ethic and willingness to learn new things.
	Experience in customer facing roles and internal support functions.
	References available upon request.`,

	`The company offers competitive salary and benefits. We value diversity
	and are an equal opportunity employer. Applicants should submit a resume
	and cover letter describing their experience and interest in the role.`,

	`Work experience: held positions of increasing responsibility. Duties
	included planning, reporting, and coordinating with other groups.
	Education: bachelor degree or equivalent practical experience required
	for this position.`,

	`A successful candidate will demonstrate strong interpersonal skills,
	the ability to prioritize multiple tasks, and a commitment to quality.
	This full time position reports to the department manager and may
	require occasional travel.`,

	`Objective: seeking a challenging position where my skills and
	experience can contribute to company success. Career highlights include
	consistent performance, team collaboration, and professional growth
	over many years of employment.`,
}
